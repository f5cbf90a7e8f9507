package constants

import "time"

// Screen Layout Constants
const (
	// MinScreenWidth and MinScreenHeight are the smallest grid the renderer lays out for
	MinScreenWidth  = 80
	MinScreenHeight = 24

	// HorizonFraction places the horizon row as a fraction of screen height
	HorizonFraction = 0.38

	// HUDHeight is the number of rows reserved at the top for the HUD layer
	HUDHeight = 1
)

// Perspective Projection Constants
const (
	// PerspectiveK tunes how rows bunch toward the horizon.
	// distance = 1 / (1 - t*PerspectiveK); with K below 1 the denominator
	// stays >= 1-K over t in [0,1], keeping distance bounded in [1, MaxDistance]
	PerspectiveK = 0.95

	// MaxDistance is the distance factor at the horizon row (t=1)
	MaxDistance = 1.0 / (1.0 - PerspectiveK)

	// CurveStep is the world-unit stride of the curvature accumulation walk.
	// One distance unit corresponds to CurveStep world units ahead of the camera
	CurveStep = 5.0

	// CurveDamp scales each segment's curvature contribution during accumulation
	CurveDamp = 0.5

	// CurveGain converts accumulated curvature at a given distance into
	// a screen-column offset: offset = acc * distance * CurveGain
	CurveGain = 0.8

	// CameraGain converts the camera lateral offset into a screen-column
	// shift of the road center, strongest for near rows
	CameraGain = 14.0

	// BaseRoadWidth is the road width in columns at distance 1 (nearest row)
	BaseRoadWidth = 64.0
)

// Road Surface Constants
const (
	// StripeDashLength is the world-unit period of the center stripe dash cycle
	StripeDashLength = 40.0

	// SurfaceGridPeriod is the distance period of the sparse lateral grid lines
	SurfaceGridPeriod = 4.0

	// NearSurfaceDistance switches to the alternate surface color below this distance
	NearSurfaceDistance = 3.0

	// FinishLineWindow is the world-unit span around the start/finish point,
	// applied at both ends of the track loop, classified as finish line
	FinishLineWindow = 200.0
)

// Roadside Placement Constants
const (
	// RoadsideViewDistance is the forward world-unit extent scanned for scenery
	RoadsideViewDistance = 100.0 * CurveStep

	// RoadsideMinDistance and RoadsideMaxDistance bound the renderable band
	RoadsideMinDistance = 1.2
	RoadsideMaxDistance = 18.0

	// RoadsidePoolSize is the fixed number of reusable scenery slots per frame
	RoadsidePoolSize = 24

	// RoadsideSelectPrime drives the deterministic weighted pool selection
	RoadsideSelectPrime = 2654435761
)

// Vehicle Projection Constants
const (
	// NPCVisibleBehind is the relative forward offset lower bound (inclusive);
	// vehicles just passed remain briefly visible
	NPCVisibleBehind = -10.0

	// NPCVisibleAhead is the relative forward offset upper bound (inclusive)
	NPCVisibleAhead = 600.0

	// VehicleLateralGain converts normalized lateral offsets to columns near the camera
	VehicleLateralGain = 34.0

	// Scale tier bands as fractions of horizon-to-bottom progress
	TierBandDot    = 0.04
	TierBandSmall  = 0.10
	TierBandMedium = 0.18
	TierBandLarge  = 0.35

	// FlashBlinkPeriod is the wall-clock blink period of the hit flash.
	// Real time, not sim time, so the blink rate survives pause and slowdown
	FlashBlinkPeriod = 150 * time.Millisecond
)

// Parallax Scroll Constants
const (
	// ParallaxCurveGain and ParallaxSteerGain weight the two scroll inputs
	ParallaxCurveGain = 0.8
	ParallaxSteerGain = 0.3

	// ParallaxRate scales the combined input into scroll units per second
	ParallaxRate = 0.15

	// ParallaxBound wraps the accumulated scroll offset into [-ParallaxBound, ParallaxBound]
	ParallaxBound = 80.0
)

// HUD Constants
const (
	// SpeedBarWidth and ProgressBarWidth are the interior widths of the HUD bars
	SpeedBarWidth    = 12
	ProgressBarWidth = 16

	// HotSpeedRatio switches the speed bar to the hot color above this fill ratio
	HotSpeedRatio = 0.8
)

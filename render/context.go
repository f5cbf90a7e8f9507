package render

import "time"

// VehicleView is the render-facing read-only view of a vehicle. The
// renderer never mutates vehicle state; the engine builds these per frame.
type VehicleView struct {
	TrackZ        float64 // forward world position
	LateralX      float64 // normalized track-width units, roughly [-1, 1]
	Speed         float64
	FlashTimer    float64 // >0 while hit-flash/invulnerability is active
	IsNPC         bool
	NPCType       int
	NPCColorIndex int
}

// HUDData is the precomputed value object the HUD renders. Race logic is
// computed upstream; the renderer only formats.
type HUDData struct {
	Lap         int
	TotalLaps   int
	Position    int // 1-based race position
	LapTime     time.Duration
	Speed       float64
	MaxSpeed    float64
	LapProgress float64 // 0..1 around the current lap
}

// RenderContext carries one frame's inputs, passed by value to every
// renderer. Renderers observe a single consistent snapshot for the whole
// frame.
type RenderContext struct {
	Width  int
	Height int

	// HorizonY is the horizon row; the road viewport spans
	// (HorizonY, Height-1] and the sky [HUDHeight, HorizonY].
	HorizonY int

	TrackPos  float64 // player forward world position
	CameraX   float64 // camera lateral offset, normalized
	Curvature float64 // segment curvature at the player position
	Steer     float64 // current steering input, [-1, 1]
	Speed     float64
	DeltaTime float64 // display-frame delta, parallax accumulation only

	// Now is wall-clock time, used only for the hit-flash blink so the
	// blink rate is independent of simulation speed or pause.
	Now time.Time

	Player   VehicleView
	Vehicles []VehicleView
	HUD      HUDData
}

// BottomY is the nearest road row.
func (c RenderContext) BottomY() int { return c.Height - 1 }

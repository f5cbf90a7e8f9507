// Package projection holds the perspective math shared by the road surface
// sweep and the roadside object placer. Both must use these exact functions;
// any divergence makes scenery drift off the road through curves.
package projection

import (
	"math"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/track"
)

// RowT maps a road-viewport row to the perspective parameter t.
// t=0 at the near bottom edge, t=1 at the horizon row.
func RowT(screenY, horizonY, bottomY int) float64 {
	if bottomY <= horizonY {
		return 0
	}
	t := float64(bottomY-screenY) / float64(bottomY-horizonY)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Distance computes the perspective divisor for parameter t.
// Bounded in [1, MaxDistance]; the denominator never reaches zero because
// PerspectiveK < 1 and t is clamped to [0,1].
func Distance(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 1.0 / (1.0 - t*constants.PerspectiveK)
}

// RoadWidth returns the full road width in columns at the given distance.
func RoadWidth(distance float64) float64 {
	return constants.BaseRoadWidth / distance
}

// WorldAhead converts a distance factor to world units ahead of the camera.
func WorldAhead(distance float64) float64 {
	return distance * constants.CurveStep
}

// DistanceForOffset inverts WorldAhead: the distance factor at which a point
// dz world units ahead of the camera sits. Returns false when the point is
// behind the camera or beyond the horizon distance.
func DistanceForOffset(dz float64) (float64, bool) {
	d := dz / constants.CurveStep
	if d < 1.0 || d > constants.MaxDistance {
		return d, false
	}
	return d, true
}

// TForDistance inverts Distance.
func TForDistance(distance float64) float64 {
	if distance < 1 {
		distance = 1
	}
	return (1.0 - 1.0/distance) / constants.PerspectiveK
}

// ScreenYForDistance projects a distance factor back to a viewport row.
func ScreenYForDistance(distance float64, horizonY, bottomY int) int {
	t := TForDistance(distance)
	return bottomY - int(math.Round(t*float64(bottomY-horizonY)))
}

// AccumulateCurve walks outward from z0 in CurveStep increments up to the
// given distance, summing damped segment curvature. Later rows depend on the
// cumulative bending of all farther segments, so this is recomputed per row
// and per object; there is no incremental shortcut across rows that stays
// consistent with arbitrary starting distances.
func AccumulateCurve(trk track.Track, z0, distance float64) float64 {
	steps := int(distance)
	acc := 0.0
	for i := 1; i <= steps; i++ {
		z := z0 + float64(i)*constants.CurveStep
		acc += trk.Curvature(z) * constants.CurveDamp
	}
	return acc
}

// CurveOffset converts accumulated curvature at a distance into a
// screen-column offset from the straight-road center.
func CurveOffset(acc, distance float64) float64 {
	return acc * distance * constants.CurveGain
}

// CameraShift is the column shift of the road center produced by the camera
// lateral offset. Near rows shift fully, far rows barely at all.
func CameraShift(cameraX, distance float64) float64 {
	return -cameraX * constants.CameraGain / distance
}

// RoadEdges computes the road center and edge columns for one row.
// The same function serves the scanline sweep and the object placer.
func RoadEdges(trk track.Track, z0, cameraX, distance float64, screenWidth int) (centerX, leftEdge, rightEdge int) {
	acc := AccumulateCurve(trk, z0, distance)
	center := float64(screenWidth)/2 + CurveOffset(acc, distance) + CameraShift(cameraX, distance)
	half := RoadWidth(distance) / 2
	centerX = int(math.Round(center))
	leftEdge = int(math.Round(center - half))
	rightEdge = int(math.Round(center + half))
	return centerX, leftEdge, rightEdge
}

package engine

import (
	"math"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/track"
)

// Vehicle is the engine-side mutable state of a car. The renderer only ever
// sees the read-only render.VehicleView built from it.
type Vehicle struct {
	TrackZ     float64 // forward world position, unwrapped
	LateralX   float64 // normalized track-width units, roughly [-1, 1]
	Speed      float64
	FlashTimer float64

	IsNPC         bool
	NPCType       int
	NPCColorIndex int
	targetSpeed   float64
	homeLateral   float64
}

// View builds the render-facing snapshot.
func (v *Vehicle) View() render.VehicleView {
	return render.VehicleView{
		TrackZ:        v.TrackZ,
		LateralX:      v.LateralX,
		Speed:         v.Speed,
		FlashTimer:    v.FlashTimer,
		IsNPC:         v.IsNPC,
		NPCType:       v.NPCType,
		NPCColorIndex: v.NPCColorIndex,
	}
}

// NewNPC seeds an NPC vehicle spread around the track.
func NewNPC(i int, trackLength float64) *Vehicle {
	lane := -0.5 + float64(i%3)*0.5
	return &Vehicle{
		TrackZ:        float64(i+1) * trackLength / float64(constants.NPCCount+1),
		LateralX:      lane,
		IsNPC:         true,
		NPCType:       i % constants.NPCTypes,
		NPCColorIndex: i,
		Speed:         constants.MaxSpeed * 0.55,
		targetSpeed:   constants.MaxSpeed * (0.55 + 0.06*float64(i%4)),
		homeLateral:   lane,
	}
}

// UpdateNPC advances an NPC by one fixed timestep: ease toward target
// speed, drift around the home lane, advance along the track.
func (v *Vehicle) UpdateNPC(trk track.Track, dt float64) {
	if !v.IsNPC {
		return
	}
	if v.Speed < v.targetSpeed {
		v.Speed += constants.Acceleration * 0.6 * dt
		if v.Speed > v.targetSpeed {
			v.Speed = v.targetSpeed
		}
	}
	// Slow for corners
	curve := math.Abs(trk.Curvature(v.TrackZ))
	if curve > 0.5 && v.Speed > v.targetSpeed*0.8 {
		v.Speed -= constants.Braking * 0.4 * dt
	}

	v.TrackZ += v.Speed * dt
	v.LateralX = v.homeLateral + 0.12*math.Sin(v.TrackZ*0.004+float64(v.NPCColorIndex))

	if v.FlashTimer > 0 {
		v.FlashTimer -= dt
	}
}

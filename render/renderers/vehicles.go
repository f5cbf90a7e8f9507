package renderers

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/projection"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/sprite"
	"github.com/lixenwraith/road-fighter/theme"
	"github.com/lixenwraith/road-fighter/track"
)

// VehicleRenderer projects NPC vehicles and the player into screen space
// and blits sprite cells directly onto the shared buffer, far-to-near, the
// player always last and topmost.
//
// Vehicles use a simplified projection tuned independently of the road
// scanline formula: a linear horizon-to-bottom row interpolation with a
// quadratic lateral spread. This duality is deliberate and preserved; the
// two curves are kept visually consistent by tuning, not by sharing code.
type VehicleRenderer struct {
	trk    track.Track
	themes *theme.Registry

	cache    *sprite.Cache
	cacheFor *theme.Theme

	order []render.VehicleView
}

// NewVehicleRenderer creates the vehicle renderer.
func NewVehicleRenderer(trk track.Track, themes *theme.Registry) *VehicleRenderer {
	return &VehicleRenderer{trk: trk, themes: themes}
}

// RelativeZ is the forward offset of a vehicle relative to the player,
// normalized into (-L/2, L/2] so the track wraparound never inflates it.
func RelativeZ(vehicleZ, playerZ, trackLength float64) float64 {
	rel := vehicleZ - playerZ
	if trackLength <= 0 {
		return rel
	}
	rel = math.Mod(rel, trackLength)
	if rel > trackLength/2 {
		rel -= trackLength
	}
	if rel < -trackLength/2 {
		rel += trackLength
	}
	return rel
}

// VisibleNPC reports whether a relative forward offset falls in the render
// window. Both bounds are inclusive.
func VisibleNPC(relZ float64) bool {
	return relZ >= constants.NPCVisibleBehind && relZ <= constants.NPCVisibleAhead
}

// ScaleTier buckets horizon-to-bottom progress into the five sprite scale
// bands.
func ScaleTier(progress float64) int {
	switch {
	case progress < constants.TierBandDot:
		return 0
	case progress < constants.TierBandSmall:
		return 1
	case progress < constants.TierBandMedium:
		return 2
	case progress < constants.TierBandLarge:
		return 3
	default:
		return 4
	}
}

// Render implements render.SystemRenderer.
func (v *VehicleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	th := v.themes.Current()
	if th == nil {
		return
	}
	if v.cacheFor != th {
		v.cache = sprite.Build(th)
		v.cacheFor = th
	}

	trackLen := v.trk.Length()
	v.order = v.order[:0]
	for _, nv := range ctx.Vehicles {
		if !nv.IsNPC {
			continue
		}
		if VisibleNPC(RelativeZ(nv.TrackZ, ctx.Player.TrackZ, trackLen)) {
			v.order = append(v.order, nv)
		}
	}
	// Farthest first so nearer vehicles overwrite shared cells
	sort.SliceStable(v.order, func(i, j int) bool {
		return RelativeZ(v.order[i].TrackZ, ctx.Player.TrackZ, trackLen) >
			RelativeZ(v.order[j].TrackZ, ctx.Player.TrackZ, trackLen)
	})

	for _, nv := range v.order {
		v.drawVehicle(ctx, buf, th, nv, RelativeZ(nv.TrackZ, ctx.Player.TrackZ, trackLen))
	}
	v.drawVehicle(ctx, buf, th, ctx.Player, 0)
}

func (v *VehicleRenderer) drawVehicle(ctx render.RenderContext, buf *render.RenderBuffer, th *theme.Theme, view render.VehicleView, relZ float64) {
	horizonRow := ctx.HorizonY + 1
	nearRow := ctx.Height - 2
	if nearRow <= horizonRow {
		return
	}

	depth := relZ / constants.NPCVisibleAhead
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	progress := 1 - depth
	screenY := horizonRow + int(math.Round(progress*float64(nearRow-horizonRow)))

	// Quadratic lateral spread: offsets grow faster near the camera
	relX := view.LateralX - ctx.CameraX
	lateral := relX * progress * progress * constants.VehicleLateralGain

	// Follow the road's bend at this depth so vehicles stay on the road
	// through curves
	curve := 0.0
	if d, ok := projection.DistanceForOffset(relZ); ok {
		acc := projection.AccumulateCurve(v.trk, ctx.Player.TrackZ, d)
		curve = projection.CurveOffset(acc, d)
	}

	screenX := ctx.Width/2 + int(math.Round(lateral+curve))

	name := sprite.PlayerVehicle
	livery := sprite.PlayerColor
	if view.IsNPC {
		name = sprite.VehicleTypeNames[view.NPCType%len(sprite.VehicleTypeNames)]
		livery = sprite.NPCColors[view.NPCColorIndex%len(sprite.NPCColors)]
	}
	spr, ok := v.cache.Lookup(name)
	if !ok {
		return
	}
	grid := spr.Variant(ScaleTier(progress))
	w, h := sprite.VariantSize(grid)
	startX := screenX - w/2
	startY := screenY - h + 1

	var flashStyle tcell.Style
	flashing := view.FlashTimer > 0
	if flashing {
		// Wall-clock blink so the rate is steady regardless of sim speed
		period := constants.FlashBlinkPeriod.Milliseconds()
		if (ctx.Now.UnixMilli()/period)%2 == 0 {
			flashStyle = th.Colors.FlashA.Tcell()
		} else {
			flashStyle = th.Colors.FlashB.Tcell()
		}
	}

	for y, row := range grid {
		sy := startY + y
		// Clip at the visual horizon and screen bottom
		if sy <= ctx.HorizonY || sy >= ctx.Height {
			continue
		}
		for x, cell := range row {
			if cell.Rune == 0 {
				continue
			}
			sx := startX + x
			if flashing {
				buf.Set(sx, sy, cell.Rune, flashStyle)
				continue
			}
			fg := cell.Fg
			if !cell.Accent {
				fg = livery
			}
			buf.SetFgOnly(sx, sy, cell.Rune, fg)
		}
	}
}

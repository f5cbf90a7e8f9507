package renderers

import (
	"math"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/projection"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/theme"
	"github.com/lixenwraith/road-fighter/track"
)

// RoadRenderer sweeps the road viewport scanline by scanline from the near
// bottom edge to the horizon, recomputing perspective and accumulated
// curvature per row. No cross-frame state; the whole surface is a pure
// function of the frame context.
type RoadRenderer struct {
	trk    track.Track
	themes *theme.Registry
}

// NewRoadRenderer creates the road surface renderer.
func NewRoadRenderer(trk track.Track, themes *theme.Registry) *RoadRenderer {
	return &RoadRenderer{trk: trk, themes: themes}
}

// FinishLineBand reports whether worldZ falls in the finish-line band.
// The track loops, so positions within the window of either end of the
// wraparound both count as near the finish.
func FinishLineBand(worldZ, trackLength float64) bool {
	if trackLength <= 0 {
		return false
	}
	z := math.Mod(worldZ, trackLength)
	if z < 0 {
		z += trackLength
	}
	return z < constants.FinishLineWindow || z > trackLength-constants.FinishLineWindow
}

// StripeDashOn reports the center stripe dash phase at a row's world
// position: on during the first half of each dash period.
func StripeDashOn(trackPos, distance float64) bool {
	phase := math.Mod(trackPos+distance*constants.CurveStep, constants.StripeDashLength)
	if phase < 0 {
		phase += constants.StripeDashLength
	}
	return phase < constants.StripeDashLength/2
}

// Render implements render.SystemRenderer.
func (r *RoadRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	th := r.themes.Current()
	if th == nil {
		return
	}

	edgeStyle := th.Colors.Edge.Tcell()
	stripeStyle := th.Colors.Stripe.Tcell()
	gridStyle := th.Colors.RoadGrid.Tcell()
	finishStyle := th.Colors.Finish.Tcell()
	roadStyle := th.Colors.Road.Tcell()
	roadAltStyle := th.Colors.RoadAlt.Tcell()

	bottomY := ctx.BottomY()
	trackLen := r.trk.Length()

	for y := bottomY; y > ctx.HorizonY; y-- {
		t := projection.RowT(y, ctx.HorizonY, bottomY)
		d := projection.Distance(t)
		worldZ := ctx.TrackPos + projection.WorldAhead(d)

		centerX, left, right := projection.RoadEdges(r.trk, ctx.TrackPos, ctx.CameraX, d, ctx.Width)

		finish := FinishLineBand(worldZ, trackLen)
		stripeOn := StripeDashOn(ctx.TrackPos, d)
		gridRow := int(d*constants.SurfaceGridPeriod)%int(constants.SurfaceGridPeriod*constants.SurfaceGridPeriod) == 0

		surface := roadStyle
		if d < constants.NearSurfaceDistance {
			surface = roadAltStyle
		}

		for x := 0; x < ctx.Width; x++ {
			switch {
			case x < left:
				r.ground(th, buf, x, y, left-x, d)
			case x > right:
				r.ground(th, buf, x, y, x-right, d)
			case x == left || x == right:
				buf.Set(x, y, '▓', edgeStyle)
			case finish:
				if (x+int(d))%2 == 0 {
					buf.Set(x, y, '▀', finishStyle)
				} else {
					buf.Set(x, y, ' ', finishStyle)
				}
			case x == centerX && stripeOn:
				buf.Set(x, y, '┃', stripeStyle)
			case gridRow:
				buf.Set(x, y, '─', gridStyle)
			default:
				buf.Set(x, y, ' ', surface)
			}
		}
	}
}

func (r *RoadRenderer) ground(th *theme.Theme, buf *render.RenderBuffer, x, y, edgeDist int, d float64) {
	g, style, ok := GroundCell(th, x, y, edgeDist, d)
	if !ok {
		return
	}
	buf.Set(x, y, g, style)
}

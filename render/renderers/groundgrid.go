package renderers

import (
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/theme"
)

// GroundGridRenderer mirrors the sky-grid algorithm below the horizon: a
// vertical center line, symmetric diagonal rays that appear once the
// per-row spread reaches their offset, and periodic full-width horizontal
// rungs, with intersections marked. Renders beneath the road layer; the
// ground pass leaves off-road cells transparent for GroundGrid themes.
type GroundGridRenderer struct {
	themes *theme.Registry
	sky    *SkyRenderer
}

// NewGroundGridRenderer creates the holodeck grid renderer. It shares the
// sky renderer's vanishing column so both grids pan together.
func NewGroundGridRenderer(themes *theme.Registry, sky *SkyRenderer) *GroundGridRenderer {
	return &GroundGridRenderer{themes: themes, sky: sky}
}

// IsVisible implements render.VisibilityToggle: the grid only draws for
// themes whose ground type is GroundGrid.
func (g *GroundGridRenderer) IsVisible() bool {
	th := g.themes.Current()
	return th != nil && th.Ground.Type == theme.GroundGrid
}

// Render implements render.SystemRenderer.
func (g *GroundGridRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	th := g.themes.Current()
	if th == nil {
		return
	}

	base := th.Colors.Ground.Tcell()
	line := th.Colors.GroundAlt.Tcell()
	vx := g.sky.VanishX(ctx.Width)
	phase := int(ctx.TrackPos / 15)

	for y := ctx.HorizonY + 1; y <= ctx.BottomY(); y++ {
		row := y - ctx.HorizonY // 1..viewport depth
		rung := (row+phase)%4 == 0

		for x := 0; x < ctx.Width; x++ {
			buf.Set(x, y, ' ', base)
		}

		if rung {
			for x := 0; x < ctx.Width; x++ {
				buf.Set(x, y, '─', line)
			}
		}

		buf.Set(vx, y, pick(rung, '┼', '│'), line)
		spread := row * 2
		for k := 1; k <= 8; k++ {
			offset := k * 4
			if spread < offset {
				break
			}
			reach := offset + (spread-offset)/2
			buf.Set(vx-reach, y, pick(rung, '┼', '╱'), line)
			buf.Set(vx+reach, y, pick(rung, '┼', '╲'), line)
		}
	}
}

func pick(cond bool, a, b rune) rune {
	if cond {
		return a
	}
	return b
}

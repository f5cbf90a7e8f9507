package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/theme"
)

// CelestialRenderer draws the sun or moon(s) from theme-relative normalized
// coordinates scaled to the sky viewport. Drawn late in the pipeline so the
// body sits over the sky grid and stars.
type CelestialRenderer struct {
	themes *theme.Registry
}

// NewCelestialRenderer creates the celestial body renderer.
func NewCelestialRenderer(themes *theme.Registry) *CelestialRenderer {
	return &CelestialRenderer{themes: themes}
}

// Render implements render.SystemRenderer.
func (c *CelestialRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	th := c.themes.Current()
	if th == nil || th.Celestial.Type == theme.CelestialNone {
		return
	}

	top := constants.HUDHeight
	skyH := ctx.HorizonY - top
	if skyH <= 0 {
		return
	}
	cx := int(th.Celestial.X * float64(ctx.Width-1))
	cy := top + int(th.Celestial.Y*float64(skyH-1))

	body := th.Colors.Celestial.Tcell()
	glow := th.Colors.CelestialGlow.Tcell()

	switch th.Celestial.Type {
	case theme.CelestialSun:
		c.drawSun(buf, ctx, cx, cy, th.Celestial.Size, body, glow)
	case theme.CelestialMoon:
		c.drawMoon(buf, ctx, cx, cy, th.Celestial.Size, body, glow, th.Colors.SkyAccent.Tcell())
	case theme.CelestialDualMoons:
		c.drawMoon(buf, ctx, cx, cy, th.Celestial.Size, body, glow, th.Colors.SkyAccent.Tcell())
		second := th.Celestial.Size - 1
		if second < 1 {
			second = 1
		}
		c.drawMoon(buf, ctx, cx+th.Celestial.Size*3, cy+2, second,
			th.Colors.SkyAccent.Tcell(), glow, body)
	}
}

// drawSun renders a filled rectangle core with a single-ring glow border.
func (c *CelestialRenderer) drawSun(buf *render.RenderBuffer, ctx render.RenderContext, cx, cy, size int, body, glow tcell.Style) {
	half := size
	for dy := -half / 2; dy <= half/2; dy++ {
		for dx := -half; dx <= half; dx++ {
			c.setSky(buf, ctx, cx+dx, cy+dy, '█', body)
		}
	}
	ringH := half/2 + 1
	ringW := half + 1
	for dy := -ringH; dy <= ringH; dy++ {
		for dx := -ringW; dx <= ringW; dx++ {
			onEdge := dy == -ringH || dy == ringH || dx == -ringW || dx == ringW
			if onEdge {
				c.setSky(buf, ctx, cx+dx, cy+dy, '░', glow)
			}
		}
	}
}

// drawMoon renders a small glyph cluster with two glow rings in distinct
// colors.
func (c *CelestialRenderer) drawMoon(buf *render.RenderBuffer, ctx render.RenderContext, cx, cy, size int, body, ring1, ring2 tcell.Style) {
	for dy := 0; dy < size; dy++ {
		for dx := -size; dx <= size; dx++ {
			c.setSky(buf, ctx, cx+dx, cy+dy, '█', body)
		}
	}
	for dx := -size - 1; dx <= size+1; dx++ {
		c.setSky(buf, ctx, cx+dx, cy-1, '▒', ring1)
		c.setSky(buf, ctx, cx+dx, cy+size, '▒', ring1)
	}
	for dx := -size - 2; dx <= size+2; dx++ {
		c.setSky(buf, ctx, cx+dx, cy-2, '░', ring2)
		c.setSky(buf, ctx, cx+dx, cy+size+1, '░', ring2)
	}
}

// setSky writes only within the sky viewport, never over the HUD or road.
func (c *CelestialRenderer) setSky(buf *render.RenderBuffer, ctx render.RenderContext, x, y int, r rune, style tcell.Style) {
	if y < constants.HUDHeight || y >= ctx.HorizonY {
		return
	}
	if x < 0 || x >= ctx.Width {
		return
	}
	buf.Set(x, y, r, style)
}

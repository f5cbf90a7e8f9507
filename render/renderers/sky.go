package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/theme"
)

// SkyRenderer draws the animated sky layer: base fill, synthwave grid,
// star field, or gradient bands, plus the horizon separator. It owns the
// horizontal parallax scroll scalar, the only cross-frame state in the
// whole pipeline besides the sprite cache.
type SkyRenderer struct {
	themes   *theme.Registry
	parallax float64

	// gradient band styles, rebuilt when the theme pointer changes
	gradFor   *theme.Theme
	gradBands [3]tcell.Style
}

// NewSkyRenderer creates the sky renderer.
func NewSkyRenderer(themes *theme.Registry) *SkyRenderer {
	return &SkyRenderer{themes: themes}
}

// Parallax returns the accumulated scroll offset, always within
// [-ParallaxBound, ParallaxBound].
func (s *SkyRenderer) Parallax() float64 { return s.parallax }

// UpdateParallax accumulates the scroll offset from curvature and steering,
// wrapping into the bounded range so it never grows without limit.
func (s *SkyRenderer) UpdateParallax(curvature, steer, speed, dt float64) {
	s.parallax += (curvature*constants.ParallaxCurveGain + steer*constants.ParallaxSteerGain) *
		speed * dt * constants.ParallaxRate
	span := 2 * constants.ParallaxBound
	for s.parallax > constants.ParallaxBound {
		s.parallax -= span
	}
	for s.parallax < -constants.ParallaxBound {
		s.parallax += span
	}
}

// VanishX is the sky-grid vanishing column, shifted by parallax scroll.
func (s *SkyRenderer) VanishX(width int) int {
	return width/2 + int(math.Round(s.parallax*0.3))
}

// Render implements render.SystemRenderer.
func (s *SkyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	th := s.themes.Current()
	if th == nil {
		return
	}

	s.UpdateParallax(ctx.Curvature, ctx.Steer, ctx.Speed, ctx.DeltaTime)

	top := constants.HUDHeight
	skyStyle := th.Colors.Sky.Tcell()
	for y := top; y < ctx.HorizonY; y++ {
		for x := 0; x < ctx.Width; x++ {
			buf.Set(x, y, ' ', skyStyle)
		}
	}

	switch th.Sky.Type {
	case theme.SkyGrid:
		s.renderGrid(ctx, buf, th, top)
	case theme.SkyGradient:
		s.renderGradient(ctx, buf, th, top)
	}

	if th.Stars.Enabled {
		s.renderStars(ctx, buf, th, top)
	}

	horizonStyle := th.Colors.Horizon.Tcell()
	for x := 0; x < ctx.Width; x++ {
		buf.Set(x, ctx.HorizonY, '─', horizonStyle)
	}
}

// renderGrid draws converging diagonal rays toward the parallax-shifted
// vanishing point and periodic full-width scan lines.
func (s *SkyRenderer) renderGrid(ctx render.RenderContext, buf *render.RenderBuffer, th *theme.Theme, top int) {
	accent := th.Colors.SkyAccent.Tcell()
	vx := s.VanishX(ctx.Width)

	if th.Sky.Converging {
		for y := ctx.HorizonY - 1; y >= top; y-- {
			rise := ctx.HorizonY - y
			buf.Set(vx, y, '│', accent)
			for k := 1; k <= 6; k++ {
				buf.Set(vx-k*rise, y, '╱', accent)
				buf.Set(vx+k*rise, y, '╲', accent)
			}
		}
	}

	if th.Sky.Horizontal {
		height := ctx.HorizonY - top
		if height > 0 {
			// Scan line sweeps from horizon upward, cycling with position
			scan := int(ctx.TrackPos/12) % (height * 2)
			if scan < height {
				y := ctx.HorizonY - 1 - scan
				for x := 0; x < ctx.Width; x++ {
					if c := buf.Get(x, y); c.Rune != ' ' && c.Rune != 0 {
						continue
					}
					buf.Set(x, y, '─', accent)
				}
			}
		}
	}
}

// renderGradient draws three vertical color bands with sparse hash texture,
// used by warm/sunset themes.
func (s *SkyRenderer) renderGradient(ctx render.RenderContext, buf *render.RenderBuffer, th *theme.Theme, top int) {
	if s.gradFor != th {
		zenith := th.Colors.Sky
		glow := th.Colors.SkyAccent
		for i := range s.gradBands {
			fg := theme.BlendColor(zenith.Fg, glow.Fg, float64(i)/2.0)
			bg := theme.BlendColor(zenith.Bg, glow.Bg, float64(i)/2.0)
			s.gradBands[i] = tcell.StyleDefault.Foreground(fg).Background(bg)
		}
		s.gradFor = th
	}

	height := ctx.HorizonY - top
	if height <= 0 {
		return
	}
	for y := top; y < ctx.HorizonY; y++ {
		band := (y - top) * 3 / height
		if band > 2 {
			band = 2
		}
		style := s.gradBands[band]
		for x := 0; x < ctx.Width; x++ {
			g := ' '
			if mix2(x, y)%7 == 0 {
				g = '░'
			}
			buf.Set(x, y, g, style)
		}
	}
}

// renderStars draws the star field: fixed count from area and density, slow
// parallax drift with wraparound, two independent twinkle rules.
func (s *SkyRenderer) renderStars(ctx render.RenderContext, buf *render.RenderBuffer, th *theme.Theme, top int) {
	height := ctx.HorizonY - top
	if height <= 0 || ctx.Width <= 0 {
		return
	}
	count := int(float64(ctx.Width*height) * th.Stars.Density)
	starStyle := th.Colors.Stars.Tcell()
	dimStyle := th.Colors.SkyAccent.Tcell()
	drift := int(math.Round(s.parallax * 0.5))

	for i := 0; i < count; i++ {
		h := mix2(i*7919, 31+i)
		x := (int(h%uint32(ctx.Width)) + drift) % ctx.Width
		if x < 0 {
			x += ctx.Width
		}
		y := top + int((h>>9)%uint32(height))

		bright := true
		if th.Stars.Twinkle {
			phase := int(ctx.TrackPos/25) + i
			if phase%3 == 0 {
				bright = false
			}
			if h&1 == 1 && phase%5 == 0 {
				continue // this star blinks out entirely
			}
		}

		g := '·'
		if h%11 == 0 {
			g = '+'
		} else if h%5 == 0 {
			g = '*'
		}
		if bright {
			buf.Set(x, y, g, starStyle)
		} else {
			buf.Set(x, y, g, dimStyle)
		}
	}
}

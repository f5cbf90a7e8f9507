package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendColor mixes two colors in Lab space, which keeps perceived brightness
// even across the blend. Used for gradient sky bands and glow falloff.
func BlendColor(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := toColorful(a)
	cb := toColorful(b)
	m := ca.BlendLab(cb, t).Clamped()
	r, g, bl := m.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// Darken scales a color toward black by factor in [0,1].
func Darken(c tcell.Color, factor float64) tcell.Color {
	return BlendColor(c, tcell.NewRGBColor(0, 0, 0), factor)
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

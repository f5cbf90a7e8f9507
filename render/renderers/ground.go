package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/theme"
)

// shoulderWidth is the off-road band, in cells, treated as shoulder.
const shoulderWidth = 2

// GroundCell decides the glyph and style of one off-road cell. edgeDist is
// the horizontal cell distance from the nearest road edge, distance the
// perspective divisor of the row. Pure function of its inputs.
//
// The bool result is false when the cell must stay transparent so the
// dedicated ground-grid layer beneath shows through (GroundGrid themes).
func GroundCell(th *theme.Theme, x, y, edgeDist int, distance float64) (rune, tcell.Style, bool) {
	cfg := th.Ground
	switch cfg.Type {
	case theme.GroundGrid:
		return 0, tcell.StyleDefault, false

	case theme.GroundDither:
		p := cfg.Dither
		if p == nil || len(p.Glyphs) == 0 {
			break
		}
		h := mix3(x, y, int(distance))
		if float64(h%1000)/1000.0 < p.Density {
			g := p.Glyphs[int(h>>10)%len(p.Glyphs)]
			return g, th.Colors.GroundAlt.Tcell(), true
		}
		return ' ', th.Colors.Ground.Tcell(), true

	case theme.GroundGrass:
		p := cfg.Grass
		if p == nil || len(p.Glyphs) == 0 {
			break
		}
		h := mix3(x, y, int(distance))
		if float64(h%1000)/1000.0 < p.Density {
			g := p.Glyphs[int(h>>10)%len(p.Glyphs)]
			return g, th.Colors.GroundAlt.Tcell(), true
		}
		// Alternating color for depth variation on the flat fill
		if (x+y)%3 == 0 {
			return ' ', th.Colors.GroundAlt.Tcell(), true
		}
		return ' ', th.Colors.Ground.Tcell(), true

	case theme.GroundSand:
		p := cfg.Sand
		if p == nil || len(p.Ripples) == 0 {
			break
		}
		h := mix3(x, y, int(distance))
		band := int(h % 100)
		for i, g := range p.Ripples {
			if band < (i+1)*7 {
				return g, th.Colors.GroundAlt.Tcell(), true
			}
		}
		return ' ', th.Colors.Ground.Tcell(), true

	case theme.GroundSolid:
		if edgeDist <= shoulderWidth {
			return '░', th.Colors.Shoulder.Tcell(), true
		}
		return ' ', th.Colors.Ground.Tcell(), true
	}

	// GroundNone and malformed configs: plain shoulder-then-fill
	if edgeDist <= shoulderWidth {
		return '░', th.Colors.Shoulder.Tcell(), true
	}
	return ' ', th.Colors.Ground.Tcell(), true
}

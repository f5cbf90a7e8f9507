// Package sprite holds the pre-rendered scaled bitmaps for roadside scenery
// and vehicles. Art is defined once as rune grids; a Cache bakes theme
// colors in wholesale on theme activation and is read-only afterward.
package sprite

import "github.com/gdamore/tcell/v2"

// TierCount is the number of discrete scale variants per sprite,
// tier 0 farthest/smallest through tier 4 nearest/largest.
const TierCount = 5

// Cell is one sprite cell. Rune 0 means transparent. Accent cells keep
// their baked color when a renderer recolors the body (NPC liveries).
type Cell struct {
	Rune   rune
	Fg     tcell.Color
	Accent bool
}

// Sprite is a named bitmap with one grid per scale tier.
type Sprite struct {
	Name     string
	Variants [][][]Cell // tier -> rows -> cols
}

// Variant returns the grid for a tier, clamping the index to the variants
// actually available.
func (s *Sprite) Variant(tier int) [][]Cell {
	if len(s.Variants) == 0 {
		return nil
	}
	if tier < 0 {
		tier = 0
	}
	if tier >= len(s.Variants) {
		tier = len(s.Variants) - 1
	}
	return s.Variants[tier]
}

// Width and Height of a variant grid in cells.
func VariantSize(grid [][]Cell) (w, h int) {
	h = len(grid)
	for _, row := range grid {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, h
}

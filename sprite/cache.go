package sprite

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/theme"
)

// NPCColors are the livery colors selected by a vehicle's color index.
var NPCColors = []tcell.Color{
	tcell.NewRGBColor(220, 60, 50),
	tcell.NewRGBColor(70, 130, 230),
	tcell.NewRGBColor(240, 200, 70),
	tcell.NewRGBColor(90, 200, 110),
	tcell.NewRGBColor(200, 110, 230),
	tcell.NewRGBColor(240, 240, 240),
}

// PlayerColor is the player's body color across all themes.
var PlayerColor = tcell.NewRGBColor(250, 250, 250)

// Cache holds theme-colored sprites keyed by name. Built wholesale on theme
// activation, read-only during rendering, replaced (never mutated) on theme
// change.
type Cache struct {
	sprites map[string]*Sprite
}

// Build bakes every known scenery and vehicle art with the theme palette.
func Build(th *theme.Theme) *Cache {
	c := &Cache{sprites: make(map[string]*Sprite, len(sceneryArt)+len(vehicleArt))}
	for name, spec := range sceneryArt {
		c.sprites[name] = bake(name, spec, th.Colors.Sprite.Fg, th.Colors.SpriteAlt.Fg)
	}
	// Vehicles use a neutral body color; the renderer recolors body cells
	// with the livery and leaves accent cells baked.
	wheel := tcell.NewRGBColor(30, 30, 30)
	for name, spec := range vehicleArt {
		c.sprites[name] = bake(name, spec, tcell.NewRGBColor(200, 200, 200), wheel)
	}
	return c
}

// Lookup returns a sprite by name.
func (c *Cache) Lookup(name string) (*Sprite, bool) {
	s, ok := c.sprites[name]
	return s, ok
}

// bake converts an artSpec into a Sprite using body and accent colors.
func bake(name string, spec artSpec, body, accent tcell.Color) *Sprite {
	s := &Sprite{Name: name, Variants: make([][][]Cell, 0, TierCount)}
	for _, rows := range spec.tiers {
		if len(rows) == 0 {
			continue
		}
		grid := make([][]Cell, len(rows))
		for y, row := range rows {
			runes := []rune(row)
			line := make([]Cell, len(runes))
			for x, r := range runes {
				if r == ' ' {
					continue
				}
				cell := Cell{Rune: r, Fg: body}
				if spec.accents[r] {
					cell.Fg = accent
					cell.Accent = true
				}
				line[x] = cell
			}
			grid[y] = line
		}
		s.Variants = append(s.Variants, grid)
	}
	return s
}

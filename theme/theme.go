// Package theme holds the declarative visual configuration of the game.
// A Theme is immutable after registration; switching themes swaps the whole
// value, never mutates one in place.
package theme

import "github.com/gdamore/tcell/v2"

// Style is a named palette entry: a foreground/background pair.
type Style struct {
	Fg tcell.Color
	Bg tcell.Color
}

// Tcell converts the pair to a tcell style.
func (s Style) Tcell() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Fg).Background(s.Bg)
}

// Palette names every color role a theme must supply. A theme configured
// with a given sky/background/ground type must fill the roles those
// renderers read; the builtins fill all of them.
type Palette struct {
	Sky       Style // empty sky cells, also the default backdrop
	SkyAccent Style // sky grid rays, scan lines, gradient texture
	Stars     Style // star field glyphs
	Horizon   Style // horizon separator row

	Celestial     Style // sun core / moon body
	CelestialGlow Style // glow ring(s)

	Background    Style // mountain/building/treeline body
	BackgroundAlt Style // lit windows, peaks, wave foam

	Road     Style // plain road surface
	RoadAlt  Style // near-row alternate surface
	RoadGrid Style // sparse lateral grid lines on the surface
	Edge     Style // road boundary glyphs
	Stripe   Style // center stripe dashes
	Finish   Style // finish-line checker cells

	Ground    Style // off-road primary fill
	GroundAlt Style // off-road texture glyphs
	Shoulder  Style // cells hugging the road edge

	Sprite    Style // roadside scenery body
	SpriteAlt Style // scenery accents (fruit, lit signs)

	HUDText   Style
	HUDBar    Style
	HUDBarHot Style

	FlashA Style // hit-flash blink phase A
	FlashB Style // hit-flash blink phase B
}

// SkyType selects the animated sky renderer.
type SkyType int

const (
	SkyPlain SkyType = iota
	SkyGrid
	SkyStars
	SkyGradient
)

// SkyConfig configures the animated sky layer.
type SkyConfig struct {
	Type SkyType
	// Converging draws the diagonal rays toward the vanishing point,
	// Horizontal the periodic scan lines. Only honored for SkyGrid.
	Converging bool
	Horizontal bool
}

// BackgroundType selects the static silhouette renderer.
type BackgroundType int

const (
	BackgroundNone BackgroundType = iota
	BackgroundMountains
	BackgroundSkyscrapers
	BackgroundOcean
	BackgroundForest
)

// BackgroundConfig configures the static background silhouette.
type BackgroundConfig struct {
	Type BackgroundType
	// Waves animates the two ocean rows under the silhouette.
	// Only honored for BackgroundOcean.
	Waves bool
}

// CelestialType selects the celestial body.
type CelestialType int

const (
	CelestialNone CelestialType = iota
	CelestialSun
	CelestialMoon
	CelestialDualMoons
)

// CelestialConfig positions the celestial body in normalized sky
// coordinates: X and Y in [0,1] over the sky viewport.
type CelestialConfig struct {
	Type CelestialType
	Size int
	X    float64
	Y    float64
}

// StarsConfig configures the star field overlay.
type StarsConfig struct {
	Enabled bool
	Density float64 // 0..1, stars per sky cell
	Twinkle bool
}

// GroundType selects the off-road texture renderer.
type GroundType int

const (
	// GroundNone falls back to plain shoulder-then-fill.
	GroundNone GroundType = iota
	// GroundGrid leaves off-road cells transparent; the dedicated
	// ground-grid layer renders the holodeck grid beneath the road.
	GroundGrid
	GroundDither
	GroundGrass
	GroundSand
	GroundSolid
)

// DitherParams configures GroundDither.
type DitherParams struct {
	Glyphs  []rune
	Density float64 // 0..1 fraction of cells textured
}

// GrassParams configures GroundGrass.
type GrassParams struct {
	Glyphs  []rune
	Density float64
}

// SandParams configures GroundSand.
type SandParams struct {
	Ripples []rune
}

// GroundConfig is a tagged union: exactly the params matching Type are set.
type GroundConfig struct {
	Type   GroundType
	Dither *DitherParams
	Grass  *GrassParams
	Sand   *SandParams
}

// Side restricts which side of the road a pool entry may occupy.
type Side int

const (
	SideBoth Side = iota
	SideLeft
	SideRight
)

// PoolEntry is one weighted choice in a theme's roadside pool.
type PoolEntry struct {
	Sprite string
	Weight int
	Side   Side
}

// RoadsideConfig configures deterministic scenery placement.
type RoadsideConfig struct {
	Pool []PoolEntry
	// Spacing is the world-unit interval between scenery slots.
	Spacing float64
	// Density above 1 mirrors placement to the opposite side on
	// alternating slots to thicken scenery.
	Density float64
}

// Theme is the complete visual configuration. Read-only after registration.
type Theme struct {
	Name       string
	Colors     Palette
	Sky        SkyConfig
	Background BackgroundConfig
	Celestial  CelestialConfig
	Stars      StarsConfig
	Ground     GroundConfig
	Roadside   RoadsideConfig
}

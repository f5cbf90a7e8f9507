package renderers

import (
	"math"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/theme"
)

// BackgroundRenderer draws the background silhouette band just above the
// horizon. The silhouette is rendered once per theme activation (or resize)
// into an offscreen layer and blitted per frame; the ocean wave rows are
// the only part recomputed every call.
type BackgroundRenderer struct {
	themes   *theme.Registry
	layer    *render.Layer
	builtFor *theme.Theme
	builtW   int
	builtH   int
}

// NewBackgroundRenderer creates the static background renderer.
func NewBackgroundRenderer(themes *theme.Registry) *BackgroundRenderer {
	return &BackgroundRenderer{themes: themes, layer: render.NewLayer(1, 1)}
}

// Render implements render.SystemRenderer.
func (b *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	th := b.themes.Current()
	if th == nil || th.Background.Type == theme.BackgroundNone {
		return
	}

	if b.builtFor != th || b.builtW != ctx.Width || b.builtH != ctx.HorizonY {
		b.rebuild(ctx, th)
	}
	b.layer.Blit(buf)

	if th.Background.Type == theme.BackgroundOcean && th.Background.Waves {
		b.renderWaves(ctx, buf, th)
	}
}

// rebuild rasterizes the theme's silhouette into the layer.
func (b *BackgroundRenderer) rebuild(ctx render.RenderContext, th *theme.Theme) {
	b.layer.Resize(ctx.Width, ctx.HorizonY)
	b.layer.X = 0
	b.layer.Y = 0

	switch th.Background.Type {
	case theme.BackgroundMountains:
		b.buildPeaks(ctx, th, mountainPeaks, 1.0)
	case theme.BackgroundOcean:
		// Islands reuse the peak routine at reduced scale, leaving the
		// two bottom rows for the animated water
		b.buildPeaks(ctx, th, islandPeaks, 0.5)
	case theme.BackgroundSkyscrapers:
		b.buildSkyline(ctx, th)
	case theme.BackgroundForest:
		b.buildTreeline(ctx, th)
	}

	b.builtFor = th
	b.builtW = ctx.Width
	b.builtH = ctx.HorizonY
}

// peak is a triangular silhouette: normalized x, height in rows, slope.
type peak struct {
	xFrac  float64
	height int
	slope  float64
}

var mountainPeaks = []peak{
	{0.08, 4, 2.2},
	{0.22, 6, 2.0},
	{0.38, 3, 2.5},
	{0.55, 7, 1.8},
	{0.72, 5, 2.2},
	{0.90, 4, 2.4},
}

var islandPeaks = []peak{
	{0.15, 3, 2.6},
	{0.48, 2, 3.0},
	{0.80, 3, 2.4},
}

func (b *BackgroundRenderer) buildPeaks(ctx render.RenderContext, th *theme.Theme, peaks []peak, scale float64) {
	body := th.Colors.Background.Tcell()
	snow := th.Colors.BackgroundAlt.Tcell()
	base := ctx.HorizonY - 1

	for _, p := range peaks {
		h := int(float64(p.height) * scale)
		if h < 2 {
			h = 2
		}
		px := int(p.xFrac * float64(ctx.Width))
		for dy := 0; dy < h; dy++ {
			y := base - dy
			// Half-width shrinks linearly toward the peak
			half := int(math.Round(float64(h-1-dy) * p.slope))
			if dy == h-1 {
				b.layer.Set(px, y, '^', snow)
				continue
			}
			b.layer.Set(px-half-1, y, '/', body)
			b.layer.Set(px+half+1, y, '\\', body)
			for x := px - half; x <= px+half; x++ {
				b.layer.Set(x, y, '▓', body)
			}
		}
	}
}

// building is a rectangular skyline element: normalized x, width, height.
type building struct {
	xFrac  float64
	width  int
	height int
}

var skylineBuildings = []building{
	{0.04, 5, 4},
	{0.13, 7, 7},
	{0.25, 4, 5},
	{0.34, 6, 9},
	{0.47, 5, 6},
	{0.58, 8, 8},
	{0.71, 4, 4},
	{0.80, 6, 10},
	{0.92, 5, 5},
}

func (b *BackgroundRenderer) buildSkyline(ctx render.RenderContext, th *theme.Theme) {
	body := th.Colors.Background.Tcell()
	lit := th.Colors.BackgroundAlt.Tcell()
	base := ctx.HorizonY - 1

	for _, bl := range skylineBuildings {
		left := int(bl.xFrac * float64(ctx.Width))
		h := bl.height
		if h > ctx.HorizonY-constants.HUDHeight-1 {
			h = ctx.HorizonY - constants.HUDHeight - 1
		}
		for dy := 0; dy < h; dy++ {
			y := base - dy
			for dx := 0; dx < bl.width; dx++ {
				x := left + dx
				// Pseudo-random lit/unlit window checkerboard
				if dx > 0 && dx < bl.width-1 && dy < h-1 && mix2(x, y)%3 == 0 {
					b.layer.Set(x, y, '▪', lit)
				} else {
					b.layer.Set(x, y, '█', body)
				}
			}
		}
		// Rooftop antenna on the taller towers
		if h >= 7 {
			b.layer.Set(left+bl.width/2, base-h, '|', body)
		}
	}
}

func (b *BackgroundRenderer) buildTreeline(ctx render.RenderContext, th *theme.Theme) {
	body := th.Colors.Background.Tcell()
	alt := th.Colors.BackgroundAlt.Tcell()
	base := ctx.HorizonY - 1

	for x := 0; x < ctx.Width; x++ {
		// Occasional gap column
		if mix2(x, 13)%7 == 0 {
			continue
		}
		h := 2 + int(mix2(x, 97)%4) // 2..5 rows
		g := '▲'
		style := body
		if mix2(x, 53)%2 == 0 {
			g = '♠'
			style = alt
		}
		for dy := 0; dy < h; dy++ {
			b.layer.Set(x, base-dy, g, style)
		}
	}
}

// renderWaves animates two water rows under the island silhouette: two
// offset sine waves combine into a height selecting the glyph, with sparse
// sparkle.
func (b *BackgroundRenderer) renderWaves(ctx render.RenderContext, buf *render.RenderBuffer, th *theme.Theme) {
	water := th.Colors.Background.Tcell()
	foam := th.Colors.BackgroundAlt.Tcell()

	for row := 0; row < 2; row++ {
		y := ctx.HorizonY - 1 - row
		if y < constants.HUDHeight {
			continue
		}
		for x := 0; x < ctx.Width; x++ {
			v := math.Sin(float64(x)*0.35+ctx.TrackPos*0.02+float64(row)*1.7) +
				math.Sin(float64(x)*0.13-ctx.TrackPos*0.014)
			var g rune
			var style = water
			switch {
			case v > 1.2:
				g = '^'
				style = foam
			case v > 0.4:
				g = '~'
			case v > -0.4:
				g = '-'
			default:
				g = '_'
			}
			if mix3(x, row, int(ctx.TrackPos/10))%29 == 0 {
				g = '*'
				style = foam
			}
			buf.Set(x, y, g, style)
		}
	}
}

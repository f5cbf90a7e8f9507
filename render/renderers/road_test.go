package renderers

import (
	"testing"

	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/theme"
	"github.com/lixenwraith/road-fighter/track"
)

func TestFinishLineBandWraparound(t *testing.T) {
	tests := []struct {
		name   string
		worldZ float64
		length float64
		want   bool
	}{
		{"Just past start", 10, 1000, true},
		{"Approaching the line", 990, 1000, true},
		{"Mid track", 500, 1000, false},
		{"Window lower boundary", 199, 1000, true},
		{"Just outside lower window", 200, 1000, false},
		{"Just inside upper window", 801, 1000, true},
		{"At upper boundary", 800, 1000, false},
		{"Wrapped a full lap", 1010, 1000, true},
		{"Negative position", -10, 1000, true},
		{"Zero-length track", 100, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FinishLineBand(tt.worldZ, tt.length); got != tt.want {
				t.Errorf("FinishLineBand(%f, %f) = %v, want %v", tt.worldZ, tt.length, got, tt.want)
			}
		})
	}
}

func TestStripeDashPhase(t *testing.T) {
	// Dash length 40: on during the first 20 world units of each period
	tests := []struct {
		name     string
		trackPos float64
		distance float64
		want     bool
	}{
		{"Phase start", 0, 0, true},
		{"Mid on-half", 0, 2, true}, // 2*5 = 10 into the period
		{"Off-half", 0, 5, false},   // 25 into the period
		{"Next period", 0, 8, true}, // 40 wraps to 0
		{"Track position shifts phase", 25, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripeDashOn(tt.trackPos, tt.distance); got != tt.want {
				t.Errorf("StripeDashOn(%f, %f) = %v, want %v", tt.trackPos, tt.distance, got, tt.want)
			}
		})
	}
}

func testContext(w, h int) render.RenderContext {
	return render.RenderContext{
		Width:    w,
		Height:   h,
		HorizonY: 9,
	}
}

func TestRoadRendererPaintsViewport(t *testing.T) {
	trk := track.NewRoad("t", []track.Section{{Length: 5000, Curve: 0}})
	themes := theme.NewDefaultRegistry()
	themes.SetTheme("sandy-desert")
	r := NewRoadRenderer(trk, themes)
	buf := render.NewRenderBuffer(80, 24)
	ctx := testContext(80, 24)

	r.Render(ctx, buf)

	// Every cell strictly below the horizon must be painted
	for y := ctx.HorizonY + 1; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if !buf.Touched(x, y) {
				t.Fatalf("road row cell (%d,%d) untouched", x, y)
			}
		}
	}
	// Nothing above the horizon belongs to the road pass
	for y := 0; y <= ctx.HorizonY; y++ {
		for x := 0; x < 80; x++ {
			if buf.Touched(x, y) {
				t.Fatalf("road pass wrote above horizon at (%d,%d)", x, y)
			}
		}
	}
}

func TestRoadRendererCenteredOnStraight(t *testing.T) {
	trk := track.NewRoad("t", []track.Section{{Length: 5000, Curve: 0}})
	themes := theme.NewDefaultRegistry()
	themes.SetTheme("sandy-desert")
	r := NewRoadRenderer(trk, themes)
	buf := render.NewRenderBuffer(80, 24)
	ctx := testContext(80, 24)

	r.Render(ctx, buf)

	// On a straight road with no camera offset the edge glyphs on the
	// bottom row must sit symmetric around the center
	bottom := 23
	var left, right = -1, -1
	for x := 0; x < 80; x++ {
		if buf.Get(x, bottom).Rune == '▓' {
			if left == -1 {
				left = x
			}
			right = x
		}
	}
	if left == -1 {
		t.Fatal("no edge glyphs on bottom row")
	}
	if (left+right)/2 != 40 {
		t.Errorf("edges (%d,%d) not centered on 40", left, right)
	}
}

func TestRoadRendererGridThemeLeavesOffRoadTransparent(t *testing.T) {
	trk := track.NewRoad("t", []track.Section{{Length: 5000, Curve: 0}})
	themes := theme.NewDefaultRegistry() // neon-night default, grid ground
	r := NewRoadRenderer(trk, themes)
	buf := render.NewRenderBuffer(80, 24)
	ctx := testContext(80, 24)

	r.Render(ctx, buf)

	if buf.Touched(0, 23) {
		t.Error("grid theme off-road cell was painted by the road pass")
	}
}

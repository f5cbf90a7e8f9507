package renderers

import (
	"testing"

	"github.com/lixenwraith/road-fighter/theme"
)

func TestGroundCellSandDeterministic(t *testing.T) {
	// A sandy desert ground query at fixed coordinates must yield the
	// same glyph and color on every call
	th := theme.SandyDesert()
	g1, s1, ok1 := GroundCell(th, 17, 3, 5, 4.0)
	if !ok1 {
		t.Fatal("sand ground returned transparent")
	}
	for i := 0; i < 50; i++ {
		g2, s2, ok2 := GroundCell(th, 17, 3, 5, 4.0)
		if g2 != g1 || s2 != s1 || ok2 != ok1 {
			t.Fatalf("call %d differed: %q vs %q", i, g2, g1)
		}
	}
}

func TestGroundCellDeterministicAcrossVariants(t *testing.T) {
	themes := map[string]*theme.Theme{
		"sand":   theme.SandyDesert(),
		"grass":  theme.PineForest(),
		"dither": theme.MidnightCity(),
		"solid":  theme.SunsetCoast(),
	}
	for name, th := range themes {
		t.Run(name, func(t *testing.T) {
			for x := 0; x < 40; x += 3 {
				for y := 10; y < 24; y += 2 {
					g1, s1, ok1 := GroundCell(th, x, y, x/2+1, 4.0)
					g2, s2, ok2 := GroundCell(th, x, y, x/2+1, 4.0)
					if g1 != g2 || s1 != s2 || ok1 != ok2 {
						t.Fatalf("(%d,%d) not deterministic", x, y)
					}
				}
			}
		})
	}
}

func TestGroundCellGridTransparent(t *testing.T) {
	// Grid themes leave off-road cells to the dedicated ground-grid layer
	th := theme.NeonNight()
	if _, _, ok := GroundCell(th, 5, 12, 3, 2.0); ok {
		t.Error("grid ground produced an opaque cell")
	}
}

func TestGroundCellSolidShoulder(t *testing.T) {
	th := theme.SunsetCoast()
	g, _, ok := GroundCell(th, 10, 20, 1, 1.5)
	if !ok || g != '░' {
		t.Errorf("shoulder cell = %q ok=%v, want '░'", g, ok)
	}
	g, _, ok = GroundCell(th, 30, 20, 10, 1.5)
	if !ok || g != ' ' {
		t.Errorf("far solid cell = %q ok=%v, want blank fill", g, ok)
	}
}

func TestGroundCellMissingConfigFallsBack(t *testing.T) {
	// A dither theme with no params must degrade to shoulder-then-fill,
	// not fail
	th := theme.MidnightCity()
	broken := *th
	broken.Ground = theme.GroundConfig{Type: theme.GroundDither}

	g, _, ok := GroundCell(&broken, 4, 12, 1, 2.0)
	if !ok || g != '░' {
		t.Errorf("fallback shoulder = %q ok=%v", g, ok)
	}
	g, _, ok = GroundCell(&broken, 4, 12, 9, 2.0)
	if !ok || g != ' ' {
		t.Errorf("fallback fill = %q ok=%v", g, ok)
	}
}

func TestGrassAlternatingColor(t *testing.T) {
	th := theme.PineForest()
	// Two flat cells whose (x+y)%3 classes differ should carry different
	// styles when neither hashes into a texture glyph
	var flatStyles = make(map[int]interface{})
	for x := 0; x < 60; x++ {
		g, s, ok := GroundCell(th, x, 15, 8, 6.0)
		if !ok || g != ' ' {
			continue
		}
		key := 0
		if (x+15)%3 == 0 {
			key = 1
		}
		flatStyles[key] = s
	}
	if len(flatStyles) == 2 && flatStyles[0] == flatStyles[1] {
		t.Error("grass flat fill does not alternate color by (x+y)%3")
	}
}

func TestMixHashStability(t *testing.T) {
	// The integer mixers back every deterministic pattern; pin a few
	// values so accidental changes surface
	if mix2(17, 3) != mix2(17, 3) {
		t.Fatal("mix2 unstable")
	}
	if mix3(17, 3, 4) != mix3(17, 3, 4) {
		t.Fatal("mix3 unstable")
	}
	if mix2(1, 2) == mix2(2, 1) {
		t.Error("mix2 symmetric, coordinates collapse")
	}
}

package sprite

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/theme"
)

func TestBuildCoversEveryPoolSprite(t *testing.T) {
	themes := theme.NewDefaultRegistry()
	for _, name := range themes.Names() {
		t.Run(name, func(t *testing.T) {
			themes.SetTheme(name)
			th := themes.Current()
			c := Build(th)
			for _, entry := range th.Roadside.Pool {
				if _, ok := c.Lookup(entry.Sprite); !ok {
					t.Errorf("theme %s pool sprite %q not in cache", name, entry.Sprite)
				}
			}
		})
	}
}

func TestBuildCoversEveryVehicle(t *testing.T) {
	themes := theme.NewDefaultRegistry()
	c := Build(themes.Current())

	for _, name := range VehicleTypeNames {
		if _, ok := c.Lookup(name); !ok {
			t.Errorf("vehicle %q not in cache", name)
		}
	}
	if _, ok := c.Lookup(PlayerVehicle); !ok {
		t.Errorf("player vehicle %q not in cache", PlayerVehicle)
	}
}

func TestLookupUnknownName(t *testing.T) {
	c := Build(theme.NewDefaultRegistry().Current())
	if _, ok := c.Lookup("zeppelin"); ok {
		t.Error("unknown sprite name reported as present")
	}
}

func TestVariantClamping(t *testing.T) {
	c := Build(theme.NewDefaultRegistry().Current())
	s, ok := c.Lookup("palm")
	if !ok {
		t.Fatal("palm sprite missing")
	}

	tests := []struct {
		name string
		tier int
	}{
		{"Below range", -3},
		{"Smallest", 0},
		{"Largest", TierCount - 1},
		{"Above range", TierCount + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := s.Variant(tt.tier)
			if len(grid) == 0 {
				t.Errorf("Variant(%d) returned empty grid", tt.tier)
			}
		})
	}
}

func TestVariantsGrowTowardCamera(t *testing.T) {
	c := Build(theme.NewDefaultRegistry().Current())
	for _, name := range []string{"palm", "pine", "streetlight", "racer"} {
		s, ok := c.Lookup(name)
		if !ok {
			t.Fatalf("sprite %q missing", name)
		}
		prevArea := 0
		for tier := 0; tier < len(s.Variants); tier++ {
			w, h := VariantSize(s.Variant(tier))
			area := w * h
			if area < prevArea {
				t.Errorf("sprite %q shrank from tier %d to %d", name, tier-1, tier)
			}
			prevArea = area
		}
	}
}

func TestAccentCellsKeepBakedColor(t *testing.T) {
	c := Build(theme.NewDefaultRegistry().Current())
	s, ok := c.Lookup("sedan")
	if !ok {
		t.Fatal("sedan sprite missing")
	}

	grid := s.Variant(TierCount - 1)
	foundAccent := false
	for _, row := range grid {
		for _, cell := range row {
			if cell.Accent {
				foundAccent = true
				if cell.Fg == tcell.ColorDefault {
					t.Error("accent cell has no baked color")
				}
			}
		}
	}
	if !foundAccent {
		t.Error("largest sedan variant has no accent cells")
	}
}

func TestBlankCellsAreTransparent(t *testing.T) {
	c := Build(theme.NewDefaultRegistry().Current())
	s, _ := c.Lookup("billboard")
	if s == nil {
		t.Fatal("billboard sprite missing")
	}
	for tier := 0; tier < len(s.Variants); tier++ {
		for _, row := range s.Variant(tier) {
			for _, cell := range row {
				if cell.Rune == ' ' {
					t.Errorf("tier %d bakes a literal space instead of transparency", tier)
				}
			}
		}
	}
}

package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBlendColorEndpoints(t *testing.T) {
	a := tcell.NewRGBColor(255, 0, 0)
	b := tcell.NewRGBColor(0, 0, 255)

	if got := BlendColor(a, b, 0); got != a {
		t.Errorf("t=0 blend = %v, want first color", got)
	}
	if got := BlendColor(a, b, 1); got != b {
		t.Errorf("t=1 blend = %v, want second color", got)
	}
}

func TestBlendColorMidpointDiffers(t *testing.T) {
	a := tcell.NewRGBColor(255, 0, 0)
	b := tcell.NewRGBColor(0, 0, 255)
	mid := BlendColor(a, b, 0.5)
	if mid == a || mid == b {
		t.Errorf("midpoint blend equals an endpoint: %v", mid)
	}
}

func TestBlendColorDeterministic(t *testing.T) {
	a := tcell.NewRGBColor(200, 120, 40)
	b := tcell.NewRGBColor(10, 60, 180)
	first := BlendColor(a, b, 0.37)
	for i := 0; i < 10; i++ {
		if got := BlendColor(a, b, 0.37); got != first {
			t.Fatalf("blend not deterministic: %v vs %v", got, first)
		}
	}
}

func TestDarken(t *testing.T) {
	c := tcell.NewRGBColor(200, 200, 200)
	d := Darken(c, 0.5)
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := d.RGB()
	if r2 >= r1 || g2 >= g1 || b2 >= b1 {
		t.Errorf("Darken did not reduce channels: (%d,%d,%d) -> (%d,%d,%d)", r1, g1, b1, r2, g2, b2)
	}
}

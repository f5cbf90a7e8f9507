package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetAndGet(t *testing.T) {
	buf := NewRenderBuffer(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	buf.Set(3, 2, 'X', style)

	cell := buf.Get(3, 2)
	if cell.Rune != 'X' || cell.Style != style {
		t.Errorf("Get(3,2) = %+v", cell)
	}
	if !buf.Touched(3, 2) {
		t.Error("cell not marked touched")
	}
	if buf.Touched(4, 2) {
		t.Error("untouched cell marked touched")
	}
}

func TestBufferOutOfBoundsSkipped(t *testing.T) {
	buf := NewRenderBuffer(10, 5)
	// Out-of-bounds writes must be skipped silently, never panic
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 5}, {100, 100}} {
		buf.Set(pt[0], pt[1], 'X', tcell.StyleDefault)
		buf.SetFgOnly(pt[0], pt[1], 'X', tcell.ColorRed)
	}
	if c := buf.Get(-1, 0); c.Rune != 0 {
		t.Error("out-of-bounds Get returned non-zero cell")
	}
}

func TestBufferSetFgOnlyPreservesBackground(t *testing.T) {
	buf := NewRenderBuffer(10, 5)
	base := tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	buf.Set(2, 2, ' ', base)

	buf.SetFgOnly(2, 2, '^', tcell.ColorGreen)

	cell := buf.Get(2, 2)
	if cell.Rune != '^' {
		t.Fatalf("rune = %q, want '^'", cell.Rune)
	}
	_, bg, _ := cell.Style.Decompose()
	if bg != tcell.ColorBlue {
		t.Errorf("background changed to %v", bg)
	}
	fg, _, _ := cell.Style.Decompose()
	if fg != tcell.ColorGreen {
		t.Errorf("foreground = %v, want green", fg)
	}
}

func TestBufferClear(t *testing.T) {
	buf := NewRenderBuffer(8, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			buf.Set(x, y, 'Z', tcell.StyleDefault)
		}
	}
	buf.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if buf.Touched(x, y) {
				t.Fatalf("cell (%d,%d) still touched after Clear", x, y)
			}
		}
	}
}

func TestBufferResizeReusesAndRepaints(t *testing.T) {
	buf := NewRenderBuffer(20, 10)
	buf.Set(1, 1, 'A', tcell.StyleDefault)
	buf.Resize(10, 5)
	w, h := buf.Bounds()
	if w != 10 || h != 5 {
		t.Fatalf("Bounds() = (%d,%d) after resize", w, h)
	}
	if buf.Touched(1, 1) {
		t.Error("resize did not clear cells")
	}
}

func TestBufferFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	buf := NewRenderBuffer(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	buf.Set(4, 1, '@', style)
	buf.Flush(screen)

	r, _, st, _ := screen.GetContent(4, 1)
	if r != '@' || st != style {
		t.Errorf("screen cell = %q %v", r, st)
	}
}

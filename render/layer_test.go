package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLayerBlitSkipsTransparent(t *testing.T) {
	buf := NewRenderBuffer(10, 5)
	under := tcell.StyleDefault.Background(tcell.ColorNavy)
	for x := 0; x < 10; x++ {
		buf.Set(x, 1, '.', under)
	}

	l := NewLayer(3, 1)
	l.X, l.Y = 2, 1
	l.Set(0, 0, 'A', tcell.StyleDefault)
	// cell (1,0) left transparent
	l.Set(2, 0, 'B', tcell.StyleDefault)
	l.Blit(buf)

	if c := buf.Get(2, 1); c.Rune != 'A' {
		t.Errorf("cell (2,1) = %q, want 'A'", c.Rune)
	}
	if c := buf.Get(3, 1); c.Rune != '.' {
		t.Errorf("transparent layer cell overwrote underlying rune: %q", c.Rune)
	}
	if c := buf.Get(4, 1); c.Rune != 'B' {
		t.Errorf("cell (4,1) = %q, want 'B'", c.Rune)
	}
}

func TestLayerHiddenDrawsNothing(t *testing.T) {
	buf := NewRenderBuffer(10, 5)
	l := NewLayer(2, 2)
	l.Set(0, 0, 'X', tcell.StyleDefault)
	l.Visible = false
	l.Blit(buf)

	if buf.Touched(0, 0) {
		t.Error("hidden layer wrote to buffer")
	}
}

func TestLayerOffscreenClipped(t *testing.T) {
	buf := NewRenderBuffer(5, 5)
	l := NewLayer(3, 3)
	l.Set(0, 0, 'X', tcell.StyleDefault)
	l.Set(2, 2, 'Y', tcell.StyleDefault)
	l.X, l.Y = 4, 4
	l.Blit(buf) // 'Y' lands outside the buffer

	if c := buf.Get(4, 4); c.Rune != 'X' {
		t.Errorf("in-bounds layer cell missing: %q", c.Rune)
	}
}

func TestLayerClear(t *testing.T) {
	l := NewLayer(4, 4)
	l.Set(1, 1, 'X', tcell.StyleDefault)
	l.Clear()
	if c := l.Get(1, 1); c.Rune != 0 {
		t.Error("Clear left a cell behind")
	}
}

package render

import "github.com/gdamore/tcell/v2"

// Layer is an offscreen rectangular cell grid that can be positioned and
// blitted onto the buffer. Static scenery such as the background
// silhouettes renders into a layer once per theme change and is blitted
// per frame; hidden layers draw nothing.
type Layer struct {
	cells   []Cell
	width   int
	height  int
	X, Y    int
	Visible bool
}

// NewLayer allocates a layer of the given size, initially visible.
func NewLayer(width, height int) *Layer {
	return &Layer{
		cells:   make([]Cell, width*height),
		width:   width,
		height:  height,
		Visible: true,
	}
}

// Bounds returns the layer dimensions.
func (l *Layer) Bounds() (int, int) { return l.width, l.height }

// Resize reallocates the cell grid only when capacity is insufficient.
func (l *Layer) Resize(width, height int) {
	size := width * height
	if cap(l.cells) < size {
		l.cells = make([]Cell, size)
	} else {
		l.cells = l.cells[:size]
	}
	l.width = width
	l.height = height
	l.Clear()
}

// Clear marks every cell transparent.
func (l *Layer) Clear() {
	for i := range l.cells {
		l.cells[i] = Cell{}
	}
}

// Set writes a cell in layer-local coordinates, bounds-checked.
func (l *Layer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}
	l.cells[y*l.width+x] = Cell{Rune: r, Style: style}
}

// Get reads a layer-local cell.
func (l *Layer) Get(x, y int) Cell {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return Cell{}
	}
	return l.cells[y*l.width+x]
}

// Blit composites the layer onto the buffer at its position, skipping
// transparent cells. Hidden layers draw nothing.
func (l *Layer) Blit(buf *RenderBuffer) {
	if !l.Visible {
		return
	}
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			cell := l.cells[y*l.width+x]
			if cell.Rune == 0 {
				continue
			}
			buf.Set(l.X+x, l.Y+y, cell.Rune, cell.Style)
		}
	}
}

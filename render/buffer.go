package render

import "github.com/gdamore/tcell/v2"

// RenderBuffer is the compositing target: a flat cell slice with dirty
// tracking and a shadow of the previous flush so only changed cells reach
// the terminal. Allocated once; Resize reuses capacity.
type RenderBuffer struct {
	cells   []Cell
	prev    []Cell
	touched []bool
	width   int
	height  int
	fill    Cell
}

// NewRenderBuffer creates a buffer with the specified dimensions.
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{fill: Cell{Rune: ' ', Style: tcell.StyleDefault}}
	b.Resize(width, height)
	return b
}

// Bounds returns the buffer dimensions.
func (b *RenderBuffer) Bounds() (int, int) { return b.width, b.height }

// SetFill sets the style cells reset to on Clear.
func (b *RenderBuffer) SetFill(style tcell.Style) {
	b.fill = Cell{Rune: ' ', Style: style}
}

// Resize adjusts buffer dimensions, reallocating only when capacity is
// insufficient. Forces a full repaint on the next flush.
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.prev = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.prev = b.prev[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	for i := range b.prev {
		b.prev[i] = Cell{}
	}
	b.Clear()
}

// Clear resets all cells to the fill using exponential copy.
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.fill
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell. Out-of-bounds writes are skipped, never an error.
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Style: style}
	b.touched[idx] = true
}

// SetFgOnly writes a rune and foreground while preserving the existing
// cell's background. Sprite blits use this so scenery and vehicles sit on
// whatever surface is already beneath them.
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	cur := b.cells[idx]
	b.cells[idx] = Cell{Rune: r, Style: cur.Style.Foreground(fg)}
	b.touched[idx] = true
}

// Get reads a cell; out-of-bounds reads return the zero cell.
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether the cell was written this frame.
func (b *RenderBuffer) Touched(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.touched[y*b.width+x]
}

// Flush writes cells that changed since the previous flush to the screen
// and shows it. Untouched cells flush as the fill.
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			cell := b.cells[idx]
			if !b.touched[idx] {
				cell = b.fill
			}
			if cell == b.prev[idx] {
				continue
			}
			screen.SetContent(x, y, cell.Rune, nil, cell.Style)
			b.prev[idx] = cell
		}
	}
	screen.Show()
}

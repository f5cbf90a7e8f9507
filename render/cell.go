package render

import "github.com/gdamore/tcell/v2"

// Cell is one screen cell. A zero Rune marks the cell transparent/untouched.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline: renderers registered at
// priorities run back-to-front into one buffer, then the buffer flushes
// changed cells to the screen.
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to the given screen.
func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Buffer exposes the compositing buffer, mainly for tests.
func (o *Orchestrator) Buffer() *RenderBuffer { return o.buffer }

// Register adds a renderer at the specified priority. Maintains sorted
// order via insertion sort; equal priorities keep registration order.
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}
	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen.
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	if o.screen != nil {
		o.screen.Sync()
	}
}

// RenderFrame executes one frame: clear, run every visible renderer in
// priority order, flush.
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	if o.screen != nil {
		o.buffer.Flush(o.screen)
	}
}

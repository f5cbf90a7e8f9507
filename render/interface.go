package render

// SystemRenderer is implemented by every stage of the frame pipeline.
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable.
type VisibilityToggle interface {
	IsVisible() bool
}

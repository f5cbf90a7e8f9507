package render

// RenderPriority determines render order. Lower values render first, so
// later stages overwrite earlier ones where they share cells.
type RenderPriority int

const (
	PrioritySky RenderPriority = iota
	PriorityBackground
	PriorityGroundGrid
	PriorityRoad
	PriorityRoadside
	PriorityVehicles
	PriorityCelestial
	PriorityHUD
)

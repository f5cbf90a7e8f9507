// Package track defines the read-only track contract the renderer consumes.
// The renderer never owns or mutates segments; it queries curvature at
// arbitrary world positions, including negative and wrapped ones.
package track

import "math"

// Segment is a position-indexed curvature sample.
type Segment struct {
	// Curve is the signed curvature contribution of this stretch of road.
	// Positive bends right, negative bends left.
	Curve float64
}

// Track is implemented by anything the renderer can race on.
type Track interface {
	// Segment returns the segment covering worldZ, or false when the
	// track has no geometry at all.
	Segment(worldZ float64) (Segment, bool)

	// Curvature is shorthand for Segment(worldZ).Curve with a zero default.
	Curvature(worldZ float64) float64

	// Length is the total loop length in world units.
	Length() float64
}

// Section is one building block of a Road: a stretch of constant curvature.
type Section struct {
	Length float64
	Curve  float64
}

// Road is a looping track assembled from piecewise constant-curvature
// sections. Queries wrap modulo the total length.
type Road struct {
	name     string
	sections []Section
	total    float64
}

// NewRoad builds a looping road from sections. Sections with non-positive
// length are dropped.
func NewRoad(name string, sections []Section) *Road {
	r := &Road{name: name}
	for _, s := range sections {
		if s.Length <= 0 {
			continue
		}
		r.sections = append(r.sections, s)
		r.total += s.Length
	}
	return r
}

// Name returns the road's display name.
func (r *Road) Name() string { return r.name }

// Length returns the loop length in world units.
func (r *Road) Length() float64 { return r.total }

// Wrap normalizes a world position into [0, Length).
func (r *Road) Wrap(worldZ float64) float64 {
	if r.total == 0 {
		return 0
	}
	z := math.Mod(worldZ, r.total)
	if z < 0 {
		z += r.total
	}
	return z
}

// Segment returns the section covering worldZ.
func (r *Road) Segment(worldZ float64) (Segment, bool) {
	if len(r.sections) == 0 {
		return Segment{}, false
	}
	z := r.Wrap(worldZ)
	for _, s := range r.sections {
		if z < s.Length {
			return Segment{Curve: s.Curve}, true
		}
		z -= s.Length
	}
	// Wrap puts z in [0, total); float rounding can land exactly on total
	return Segment{Curve: r.sections[len(r.sections)-1].Curve}, true
}

// Curvature returns the curvature at worldZ, zero off an empty track.
func (r *Road) Curvature(worldZ float64) float64 {
	seg, ok := r.Segment(worldZ)
	if !ok {
		return 0
	}
	return seg.Curve
}

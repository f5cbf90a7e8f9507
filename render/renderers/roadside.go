package renderers

import (
	"math"
	"sort"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/projection"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/sprite"
	"github.com/lixenwraith/road-fighter/theme"
	"github.com/lixenwraith/road-fighter/track"
)

// Placement is one scenery sprite positioned in screen space for the
// current frame. Created fresh each frame, never persisted.
type Placement struct {
	ScreenX  int
	ScreenY  int
	Distance float64
	Sprite   string
}

// RoadsideRenderer deterministically selects and positions scenery at fixed
// world-Z slots, projecting each through the same perspective math as the
// road surface. A fixed pool of placement slots is reused every frame;
// unused slots are explicitly hidden.
type RoadsideRenderer struct {
	trk    track.Track
	themes *theme.Registry

	cache    *sprite.Cache
	cacheFor *theme.Theme

	slots   [constants.RoadsidePoolSize]placementSlot
	scratch []Placement
}

type placementSlot struct {
	active    bool
	placement Placement
}

// NewRoadsideRenderer creates the scenery placer.
func NewRoadsideRenderer(trk track.Track, themes *theme.Registry) *RoadsideRenderer {
	return &RoadsideRenderer{trk: trk, themes: themes}
}

// SelectFromPool deterministically picks a pool entry index for a world
// position: the same worldZ always yields the same sprite. Returns -1 for
// an empty or zero-weight pool.
func SelectFromPool(pool []theme.PoolEntry, worldZ float64) int {
	total := 0
	for _, e := range pool {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return -1
	}
	h := (int64(math.Floor(worldZ)) * constants.RoadsideSelectPrime) % int64(total)
	if h < 0 {
		h += int64(total)
	}
	cum := int64(0)
	for i, e := range pool {
		if e.Weight <= 0 {
			continue
		}
		cum += int64(e.Weight)
		if h < cum {
			return i
		}
	}
	return len(pool) - 1
}

// DistanceTier maps a perspective distance to a sprite scale tier, nearer
// meaning larger.
func DistanceTier(d float64) int {
	switch {
	case d > 14:
		return 0
	case d > 9:
		return 1
	case d > 6:
		return 2
	case d > 3:
		return 3
	default:
		return 4
	}
}

// ComputePlacements produces the frame's scenery placements, sorted
// far-to-near so nearer sprites overwrite farther ones during compositing.
func (r *RoadsideRenderer) ComputePlacements(ctx render.RenderContext) []Placement {
	th := r.themes.Current()
	if th == nil || len(th.Roadside.Pool) == 0 {
		return nil
	}
	spacing := th.Roadside.Spacing
	if spacing <= 0 {
		spacing = 50
	}

	r.scratch = r.scratch[:0]

	// Snap the window start up to the next slot multiple so objects occupy
	// fixed world positions regardless of camera motion
	start := math.Ceil(ctx.TrackPos/spacing) * spacing
	for z := start; z < ctx.TrackPos+constants.RoadsideViewDistance; z += spacing {
		d, ok := projection.DistanceForOffset(z - ctx.TrackPos)
		if !ok || d < constants.RoadsideMinDistance || d > constants.RoadsideMaxDistance {
			continue
		}
		idx := SelectFromPool(th.Roadside.Pool, z)
		if idx < 0 {
			continue
		}
		entry := th.Roadside.Pool[idx]
		slot := int(z / spacing)

		screenY := projection.ScreenYForDistance(d, ctx.HorizonY, ctx.BottomY())
		_, left, right := projection.RoadEdges(r.trk, ctx.TrackPos, ctx.CameraX, d, ctx.Width)
		margin := int(math.Round(8.0/d)) + 1

		leftSide := slot%2 == 0
		switch entry.Side {
		case theme.SideLeft:
			leftSide = true
		case theme.SideRight:
			leftSide = false
		}

		r.place(ctx, entry.Sprite, d, screenY, left, right, margin, leftSide)
		if th.Roadside.Density > 1 && slot%2 == 1 {
			r.place(ctx, entry.Sprite, d, screenY, left, right, margin, !leftSide)
		}
	}

	sort.SliceStable(r.scratch, func(i, j int) bool {
		return r.scratch[i].Distance > r.scratch[j].Distance
	})
	return r.scratch
}

func (r *RoadsideRenderer) place(ctx render.RenderContext, name string, d float64, screenY, left, right, margin int, leftSide bool) {
	var x int
	if leftSide {
		x = left - margin
	} else {
		x = right + margin
	}
	if x < 0 || x >= ctx.Width {
		return
	}
	r.scratch = append(r.scratch, Placement{
		ScreenX:  x,
		ScreenY:  screenY,
		Distance: d,
		Sprite:   name,
	})
}

// Render implements render.SystemRenderer: assign placements to pool slots,
// hide the rest, and blit active slots far-to-near.
func (r *RoadsideRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	th := r.themes.Current()
	if th == nil {
		return
	}
	if r.cacheFor != th {
		r.cache = sprite.Build(th)
		r.cacheFor = th
	}

	placements := r.ComputePlacements(ctx)
	for i := range r.slots {
		if i < len(placements) {
			r.slots[i].active = true
			r.slots[i].placement = placements[i]
		} else {
			// Excess pool capacity this frame: explicitly hidden, never stale
			r.slots[i].active = false
		}
	}

	for i := range r.slots {
		if !r.slots[i].active {
			continue
		}
		r.blit(ctx, buf, th, r.slots[i].placement)
	}
}

func (r *RoadsideRenderer) blit(ctx render.RenderContext, buf *render.RenderBuffer, th *theme.Theme, p Placement) {
	spr, ok := r.cache.Lookup(p.Sprite)
	if !ok {
		// Unknown name falls back to the pool's first sprite
		if len(th.Roadside.Pool) == 0 {
			return
		}
		spr, ok = r.cache.Lookup(th.Roadside.Pool[0].Sprite)
		if !ok {
			return
		}
	}

	grid := spr.Variant(DistanceTier(p.Distance))
	w, h := sprite.VariantSize(grid)
	startX := p.ScreenX - w/2
	startY := p.ScreenY - h + 1

	for y, row := range grid {
		sy := startY + y
		if sy <= ctx.HorizonY || sy >= ctx.Height {
			continue
		}
		for x, cell := range row {
			if cell.Rune == 0 {
				continue
			}
			buf.SetFgOnly(startX+x, sy, cell.Rune, cell.Fg)
		}
	}
}

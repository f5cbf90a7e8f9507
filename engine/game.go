// Package engine drives the game: fixed-timestep simulation, input, race
// bookkeeping, and the per-frame handoff to the render pipeline. The
// renderer consumes resulting positions only; all physics lives here.
package engine

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/render/renderers"
	"github.com/lixenwraith/road-fighter/theme"
	"github.com/lixenwraith/road-fighter/track"
)

// Game owns the whole session: world state, input, and render pipeline.
// Single execution context; renderers observe one consistent snapshot per
// frame via the RenderContext value.
type Game struct {
	screen tcell.Screen
	orch   *render.Orchestrator
	themes *theme.Registry
	trk    *track.Road

	player *Vehicle
	npcs   []*Vehicle
	input  *inputState

	width  int
	height int

	totalLaps int
	lap       int
	lapStart  time.Duration // sim-time at lap start
	simTime   time.Duration
	finished  bool
	quit      bool
}

// NewGame wires the pipeline and spawns the field.
func NewGame(screen tcell.Screen, themes *theme.Registry, trk *track.Road, laps int) *Game {
	w, h := screen.Size()
	if w < constants.MinScreenWidth {
		w = constants.MinScreenWidth
	}
	if h < constants.MinScreenHeight {
		h = constants.MinScreenHeight
	}

	g := &Game{
		screen:    screen,
		orch:      render.NewOrchestrator(screen, w, h),
		themes:    themes,
		trk:       trk,
		player:    &Vehicle{LateralX: 0},
		input:     newInputState(),
		width:     w,
		height:    h,
		totalLaps: laps,
		lap:       1,
	}
	for i := 0; i < constants.NPCCount; i++ {
		g.npcs = append(g.npcs, NewNPC(i, trk.Length()))
	}

	sky := renderers.NewSkyRenderer(themes)
	g.orch.Register(sky, render.PrioritySky)
	g.orch.Register(renderers.NewBackgroundRenderer(themes), render.PriorityBackground)
	g.orch.Register(renderers.NewGroundGridRenderer(themes, sky), render.PriorityGroundGrid)
	g.orch.Register(renderers.NewRoadRenderer(trk, themes), render.PriorityRoad)
	g.orch.Register(renderers.NewRoadsideRenderer(trk, themes), render.PriorityRoadside)
	g.orch.Register(renderers.NewVehicleRenderer(trk, themes), render.PriorityVehicles)
	g.orch.Register(renderers.NewCelestialRenderer(themes), render.PriorityCelestial)
	g.orch.Register(renderers.NewHUDRenderer(themes), render.PriorityHUD)

	return g
}

// Run executes the game loop until quit: fixed-timestep simulation with an
// accumulator, display frames at FrameRate independent of the tick rate.
func (g *Game) Run() {
	events := make(chan tcell.Event, 16)
	quitPoll := make(chan struct{})
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quitPoll:
				return
			}
		}
	}()
	defer close(quitPoll)

	frame := time.NewTicker(time.Second / constants.FrameRate)
	defer frame.Stop()

	last := time.Now()
	var acc time.Duration

	for !g.quit {
		select {
		case ev := <-events:
			g.handleEvent(ev)
		case now := <-frame.C:
			elapsed := now.Sub(last)
			last = now
			// Clamp a stall so the accumulator cannot spiral
			if elapsed > 250*time.Millisecond {
				elapsed = 250 * time.Millisecond
			}
			acc += elapsed
			for acc >= constants.SimTick {
				g.step(constants.SimTick.Seconds())
				acc -= constants.SimTick
			}
			g.renderFrame(elapsed.Seconds())
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		g.width, g.height = e.Size()
		g.orch.Resize(g.width, g.height)
	case *tcell.EventKey:
		now := time.Now()
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			g.quit = true
		case tcell.KeyLeft:
			g.input.steerLeft(now)
		case tcell.KeyRight:
			g.input.steerRight(now)
		case tcell.KeyUp:
			g.input.throttle(now)
		case tcell.KeyDown:
			g.input.brake(now)
		case tcell.KeyRune:
			switch e.Rune() {
			case 'q':
				g.quit = true
			case 't':
				g.themes.Cycle()
			}
		}
	}
}

// step advances the simulation by one fixed timestep.
func (g *Game) step(dt float64) {
	g.simTime += constants.SimTick
	now := time.Now()
	p := g.player

	// Longitudinal
	switch {
	case g.input.Throttle(now) && !g.finished:
		p.Speed += constants.Acceleration * dt
	case g.input.Brake(now):
		p.Speed -= constants.Braking * dt
	default:
		p.Speed -= constants.CoastDrag * dt
	}
	offRoad := math.Abs(p.LateralX) > 1
	if offRoad {
		p.Speed -= constants.OffRoadDrag * dt
	}
	if p.Speed < 0 {
		p.Speed = 0
	}
	if p.Speed > constants.MaxSpeed {
		p.Speed = constants.MaxSpeed
	}

	// Lateral: steering plus centrifugal pull through corners
	steer := g.input.Steer(now)
	curve := g.trk.Curvature(p.TrackZ)
	speedFrac := p.Speed / constants.MaxSpeed
	p.LateralX += steer * constants.SteerRate * dt
	p.LateralX -= curve * speedFrac * constants.CentrifugalPull * dt
	if p.LateralX < -1.6 {
		p.LateralX = -1.6
	}
	if p.LateralX > 1.6 {
		p.LateralX = 1.6
	}

	prevWrapped := g.trk.Wrap(p.TrackZ)
	p.TrackZ += p.Speed * dt
	if g.trk.Wrap(p.TrackZ) < prevWrapped && p.Speed > 0 {
		g.completeLap()
	}
	if p.FlashTimer > 0 {
		p.FlashTimer -= dt
	}

	for _, n := range g.npcs {
		n.UpdateNPC(g.trk, dt)
	}
	g.collide()
}

func (g *Game) completeLap() {
	if g.finished {
		return
	}
	g.lap++
	g.lapStart = g.simTime
	if g.lap > g.totalLaps {
		g.lap = g.totalLaps
		g.finished = true
	}
}

// collide flags contact between the player and nearby NPCs: both flash,
// the player scrubs speed.
func (g *Game) collide() {
	if g.player.FlashTimer > 0 {
		return
	}
	for _, n := range g.npcs {
		rel := renderers.RelativeZ(n.TrackZ, g.player.TrackZ, g.trk.Length())
		if math.Abs(rel) < 8 && math.Abs(n.LateralX-g.player.LateralX) < 0.3 {
			g.player.FlashTimer = constants.CollisionFlashDuration
			n.FlashTimer = constants.CollisionFlashDuration
			g.player.Speed *= 0.4
			return
		}
	}
}

// position is the player's 1-based race standing by total distance.
func (g *Game) position() int {
	pos := 1
	for _, n := range g.npcs {
		if n.TrackZ > g.player.TrackZ {
			pos++
		}
	}
	return pos
}

func (g *Game) buildHUD() render.HUDData {
	return render.HUDData{
		Lap:         g.lap,
		TotalLaps:   g.totalLaps,
		Position:    g.position(),
		LapTime:     g.simTime - g.lapStart,
		Speed:       g.player.Speed,
		MaxSpeed:    constants.MaxSpeed,
		LapProgress: g.trk.Wrap(g.player.TrackZ) / g.trk.Length(),
	}
}

// renderFrame snapshots world state into a RenderContext and runs the
// pipeline once.
func (g *Game) renderFrame(dt float64) {
	horizon := constants.HUDHeight + int(float64(g.height)*constants.HorizonFraction)
	if horizon < constants.HUDHeight+3 {
		horizon = constants.HUDHeight + 3
	}

	views := make([]render.VehicleView, 0, len(g.npcs))
	for _, n := range g.npcs {
		views = append(views, n.View())
	}

	ctx := render.RenderContext{
		Width:     g.width,
		Height:    g.height,
		HorizonY:  horizon,
		TrackPos:  g.player.TrackZ,
		CameraX:   g.player.LateralX,
		Curvature: g.trk.Curvature(g.player.TrackZ),
		Steer:     g.input.Steer(time.Now()),
		Speed:     g.player.Speed,
		DeltaTime: dt,
		Now:       time.Now(),
		Player:    g.player.View(),
		Vehicles:  views,
		HUD:       g.buildHUD(),
	}
	g.orch.RenderFrame(ctx)
}

package engine

import "time"

// inputState turns discrete key events into continuous controls. Terminals
// deliver repeats but no key-up, so each control decays to neutral a short
// interval after the last event.
type inputState struct {
	steer       float64
	steerAt     time.Time
	throttleAt  time.Time
	brakeAt     time.Time
	holdTimeout time.Duration
}

func newInputState() *inputState {
	return &inputState{holdTimeout: 150 * time.Millisecond}
}

func (in *inputState) steerLeft(now time.Time)  { in.steer = -1; in.steerAt = now }
func (in *inputState) steerRight(now time.Time) { in.steer = 1; in.steerAt = now }
func (in *inputState) throttle(now time.Time)   { in.throttleAt = now }
func (in *inputState) brake(now time.Time)      { in.brakeAt = now }

// Steer returns the current steering value in [-1, 1].
func (in *inputState) Steer(now time.Time) float64 {
	if now.Sub(in.steerAt) > in.holdTimeout {
		return 0
	}
	return in.steer
}

// Throttle reports whether the accelerator is considered held.
func (in *inputState) Throttle(now time.Time) bool {
	return now.Sub(in.throttleAt) <= in.holdTimeout
}

// Brake reports whether the brake is considered held.
func (in *inputState) Brake(now time.Time) bool {
	return now.Sub(in.brakeAt) <= in.holdTimeout
}

package constants

import "time"

// Simulation Timing Constants
const (
	// SimTickRate is the fixed-timestep simulation frequency
	SimTickRate = 60

	// SimTick is the fixed simulation step duration
	SimTick = time.Second / SimTickRate

	// FrameRate is the display refresh target, independent of SimTickRate
	FrameRate = 30
)

// Player Physics Constants
const (
	// MaxSpeed is the player top speed in world units per second
	MaxSpeed = 300.0

	// Acceleration and Braking in world units per second squared
	Acceleration = 90.0
	Braking      = 220.0

	// CoastDrag decays speed when neither accelerating nor braking
	CoastDrag = 40.0

	// OffRoadDrag is the additional drag applied beyond the road edges
	OffRoadDrag = 160.0

	// SteerRate is the lateral change per second at full steer
	SteerRate = 1.6

	// CentrifugalPull drags the player outward through curves, scaled by speed
	CentrifugalPull = 0.9
)

// Race Constants
const (
	// DefaultLaps per race
	DefaultLaps = 3

	// NPCCount is the number of NPC vehicles spawned
	NPCCount = 6

	// NPCTypes is the number of distinct NPC sprite types
	NPCTypes = 3

	// CollisionFlashDuration is how long a vehicle flashes after contact, in sim seconds
	CollisionFlashDuration = 2.0
)

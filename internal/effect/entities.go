package effect

import "rage-room/internal/defs"

// Spike is one jagged point around a blob splat. Angle is absolute,
// Length is in pixels.
type Spike struct {
	Angle  float64
	Length float64
}

// Splat is a persistent blood mark. It dries toward a floor alpha but is
// never removed by decay.
type Splat struct {
	X, Y     float64
	Radius   float64
	Kind     defs.SplatKind
	Rotation float64
	Alpha    float64
	Spikes   []Spike // empty for slash splats
}

// Particle is a flying droplet following ballistic physics.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64
	Radius  float64
	Alpha   float64
}

// DripSource keeps releasing drips while a wound bleeds.
type DripSource struct {
	X, Y     float64
	Rate     float64 // per-tick spawn probability
	Life     int     // remaining ticks
	Strength float64 // drop size multiplier
}

// Drip is a falling blood streak. It turns into a splat on the floor.
type Drip struct {
	X, Y  float64
	VY    float64
	W, H  float64
	Alpha float64
}

// Tag is a floating piece of rage text.
type Tag struct {
	Text     string
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Size     float64
	Alpha    float64
	Life     int
}

// Bruise is a static dark mark left by every hit.
type Bruise struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

// Wound is the long knife cut drawn under the drip source.
type Wound struct {
	X, Y       float64
	Length     float64
	Rotation   float64
	Alpha      float64
	DripOffset float64
}

// Shake is the pending screen shake.
type Shake struct {
	Frames           int
	Power            float64
	OffsetX, OffsetY float64
}

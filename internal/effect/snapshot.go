package effect

// Frame is a read-only view of the engine state for one draw pass. The
// slices alias engine storage and are valid until the next Tick or hit.
type Frame struct {
	Width, Height float64

	Splats      []Splat
	Particles   []Particle
	DripSources []DripSource
	Drips       []Drip
	Tags        []Tag
	Bruises     []Bruise
	Wounds      []Wound

	Damage         float64 // clamped display value
	Pool           float64
	ShakeX, ShakeY float64
}

// Snapshot returns the current state for rendering.
func (e *Engine) Snapshot() Frame {
	return Frame{
		Width:       e.width,
		Height:      e.height,
		Splats:      e.splats.Items(),
		Particles:   e.particles.Items(),
		DripSources: e.sources.Items(),
		Drips:       e.drips.Items(),
		Tags:        e.tags.Items(),
		Bruises:     e.bruises.Items(),
		Wounds:      e.wounds.Items(),
		Damage:      e.display,
		Pool:        e.pool,
		ShakeX:      e.shake.OffsetX,
		ShakeY:      e.shake.OffsetY,
	}
}

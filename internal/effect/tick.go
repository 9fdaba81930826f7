package effect

import "rage-room/internal/config"

// Tick advances the simulation by one frame. Decay is counted in ticks,
// not wall-clock time.
func (e *Engine) Tick() {
	e.ticks++
	e.updateDripSources()
	e.updateDrips()
	e.updateWounds()
	e.updateSplats()
	e.updateParticles()
	e.updateTags()
	e.updateShake()
}

func (e *Engine) updateDripSources() {
	e.sources.Retain(func(s *DripSource) bool {
		if e.rng.Chance(s.Rate) {
			e.spawnDrip(s.X, s.Y, s.Strength)
		}
		return stepSource(s)
	})
}

// stepSource ages a drip source by one tick and reports whether it is
// still bleeding.
func stepSource(s *DripSource) bool {
	s.Life--
	s.Rate *= config.DripSourceDecay
	return s.Life > 0 && s.Rate >= config.DripSourceMinRate
}

// SourceLifetime returns the number of ticks after which s is removed,
// independent of which drips it happens to spawn.
func SourceLifetime(s DripSource) int {
	for n := 1; ; n++ {
		if !stepSource(&s) {
			return n
		}
	}
}

func (e *Engine) updateDrips() {
	floor := e.height - e.height*config.DripFloorFraction
	e.drips.Retain(func(d *Drip) bool {
		d.Y += d.VY
		d.VY += config.DripGravity
		d.Alpha -= config.DripDecay

		if d.Y+d.H > floor {
			e.spawnLanding(d.X)
			e.addPool(config.DripPoolIncrement)
			return false
		}
		return d.Y <= e.height+config.DripMargin && d.Alpha > 0
	})
}

func (e *Engine) updateWounds() {
	e.wounds.Each(func(w *Wound) {
		w.Alpha = max(config.WoundAlphaMin, w.Alpha-config.WoundDecay)
	})
}

func (e *Engine) updateSplats() {
	e.splats.Each(func(s *Splat) {
		s.Alpha = max(config.SplatAlphaMin, s.Alpha-config.SplatDecay)
	})
}

func (e *Engine) updateParticles() {
	limit := e.height + config.ParticleMargin
	e.particles.Retain(func(p *Particle) bool {
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= config.ParticleDecay
		return p.Alpha > 0 && p.Y <= limit
	})
}

func (e *Engine) updateTags() {
	e.tags.Retain(func(t *Tag) bool {
		t.X += t.VX
		t.Y += t.VY
		t.VY += config.TagGravity
		t.Life--
		if t.Life < config.TagFadeLife {
			t.Alpha -= config.TagDecay
		}
		return t.Alpha > 0 && t.Life > 0
	})
}

func (e *Engine) updateShake() {
	if e.shake.Frames <= 0 {
		e.shake.OffsetX, e.shake.OffsetY = 0, 0
		return
	}
	p := e.shake.Power
	e.shake.OffsetX = e.rng.Range(-p, p)
	e.shake.OffsetY = e.rng.Range(-p, p)
	e.shake.Frames--
}

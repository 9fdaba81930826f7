package effect

import (
	"math"

	"rage-room/internal/config"
	"rage-room/internal/defs"
)

func splatRadius(kind defs.SplatKind) float64 {
	switch kind {
	case defs.SplatHeavy:
		return 52
	case defs.SplatCrack:
		return 60
	}
	return 34
}

func spikeCount(kind defs.SplatKind) int {
	switch kind {
	case defs.SplatHeavy:
		return config.SpikesHeavy
	case defs.SplatCrack:
		return config.SpikesCrack
	}
	return config.SpikesSoft
}

func (e *Engine) spikes(kind defs.SplatKind, r float64) []Spike {
	n := spikeCount(kind)
	out := make([]Spike, n)
	for i := range out {
		out[i] = Spike{
			Angle:  (2*math.Pi/float64(n))*float64(i) + e.rng.Range(-0.18, 0.18),
			Length: e.rng.Range(r*0.35, r*1.05),
		}
	}
	return out
}

func (e *Engine) spawnSplat(x, y float64, kind defs.SplatKind) {
	r := splatRadius(kind)
	e.splats.Push(Splat{
		X:        x,
		Y:        y,
		Radius:   r,
		Kind:     kind,
		Rotation: e.rng.Range(0, 2*math.Pi),
		Alpha:    config.SplatBlobAlpha,
		Spikes:   e.spikes(kind, r),
	})
}

func (e *Engine) spawnSlash(x, y float64) {
	e.splats.Push(Splat{
		X:        x,
		Y:        y,
		Radius:   e.rng.Range(55, 85),
		Kind:     defs.SplatSlash,
		Rotation: e.rng.Range(-0.7, 0.7),
		Alpha:    config.SplatSlashAlpha,
	})
}

// spawnLanding leaves the small soft splat of a drip that reached the floor.
func (e *Engine) spawnLanding(x float64) {
	r := e.rng.Range(12, 22)
	e.splats.Push(Splat{
		X:        x + e.rng.Range(-6, 6),
		Y:        e.height - e.rng.Range(8, 16),
		Radius:   r,
		Kind:     defs.SplatSoft,
		Rotation: e.rng.Range(0, 2*math.Pi),
		Alpha:    config.DripLandAlpha,
		Spikes:   e.spikes(defs.SplatSoft, r),
	})
}

func (e *Engine) spawnDroplets(x, y float64, count int) {
	for i := 0; i < count; i++ {
		e.particles.Push(Particle{
			X:       x,
			Y:       y,
			VX:      e.rng.Range(-7, 7),
			VY:      e.rng.Range(-12, -2),
			Gravity: e.rng.Range(0.20, 0.34),
			Radius:  e.rng.Range(2.2, 6.8),
			Alpha:   1,
		})
	}
}

func (e *Engine) spawnBruise(x, y float64) {
	e.bruises.Push(Bruise{
		X:      x + e.rng.Range(-10, 10),
		Y:      y + e.rng.Range(-10, 10),
		Radius: e.rng.Range(20, 46),
		Alpha:  min(config.BruiseAlphaMax, e.display/config.BruiseDamageFactor),
	})
}

func (e *Engine) spawnDripSource(x, y float64) {
	e.sources.Push(DripSource{
		X:        x,
		Y:        y,
		Rate:     config.DripSourceRate,
		Life:     config.DripSourceLife,
		Strength: e.rng.Range(0.8, 1.2),
	})
}

func (e *Engine) spawnWound(x, y float64) {
	e.wounds.Push(Wound{
		X:          x,
		Y:          y,
		Length:     e.rng.Range(70, 120),
		Rotation:   e.rng.Range(-0.7, 0.7),
		Alpha:      config.WoundAlpha,
		DripOffset: e.rng.Range(4, 10),
	})
}

func (e *Engine) spawnDrip(x, y, strength float64) {
	e.drips.Push(Drip{
		X:     x + e.rng.Range(-10, 10),
		Y:     y + e.rng.Range(-4, 6),
		VY:    e.rng.Range(3.2, 6.8) * strength,
		W:     e.rng.Range(2.5, 5.5) * strength,
		H:     e.rng.Range(10, 30) * strength,
		Alpha: config.DripAlpha,
	})
}

func (e *Engine) spawnTag(text string, x, y float64) {
	e.tags.Push(Tag{
		Text:     text,
		X:        x + e.rng.Range(-10, 10),
		Y:        y + e.rng.Range(-8, 8),
		VX:       e.rng.Range(-1.6, 1.6),
		VY:       e.rng.Range(-3.4, -1.8),
		Rotation: e.rng.Range(-0.35, 0.35),
		Size:     e.rng.Range(28, 58),
		Alpha:    1,
		Life:     config.TagBaseLife + e.rng.Intn(config.TagLifeVariance),
	})
}

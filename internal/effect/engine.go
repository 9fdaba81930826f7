// Package effect is the blood/particle simulation behind the room. It owns
// every transient entity together with the damage meter and the blood-pool
// level, and knows nothing about rendering or input devices.
package effect

import (
	"rage-room/internal/config"
	"rage-room/internal/defs"
	"rage-room/internal/event"
	"rage-room/internal/utils"
)

// Engine holds all mutable state of one room session.
type Engine struct {
	width, height float64

	rng        *utils.PRNGService
	arsenal    *defs.Arsenal
	dispatcher *event.Dispatcher
	input      TextBuffer

	splats    *Seq[Splat]
	particles *Seq[Particle]
	sources   *Seq[DripSource]
	drips     *Seq[Drip]
	tags      *Seq[Tag]
	bruises   *Seq[Bruise]
	wounds    *Seq[Wound]
	shake     Shake
	damage    float64 // unbounded accumulator
	display   float64 // damage clamped to [0, DamageMax]
	pool      float64 // [0, 1], never decreases
	ticks     uint64
}

// NewEngine creates an engine for a surface of the given size.
// dispatcher may be nil when nobody listens for feedback events.
func NewEngine(width, height float64, arsenal *defs.Arsenal, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Engine {
	if arsenal == nil {
		arsenal = defs.NewArsenal()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Engine{
		width:      width,
		height:     height,
		rng:        rng,
		arsenal:    arsenal,
		dispatcher: dispatcher,
		input:      TextBuffer{max: config.TextInputMaxRune},
		splats:     NewSeq[Splat](config.MaxSplats),
		particles:  NewSeq[Particle](config.MaxParticles),
		sources:    NewSeq[DripSource](config.MaxDripSources),
		drips:      NewSeq[Drip](config.MaxDrips),
		tags:       NewSeq[Tag](config.MaxTags),
		bruises:    NewSeq[Bruise](config.MaxBruises),
		wounds:     NewSeq[Wound](config.MaxWounds),
	}
}

// Resize changes the surface size used for floor and release positions.
func (e *Engine) Resize(width, height float64) {
	e.width, e.height = width, height
}

// Size returns the current surface size.
func (e *Engine) Size() (float64, float64) {
	return e.width, e.height
}

// Input returns the rage-text buffer the input bridge types into.
func (e *Engine) Input() *TextBuffer {
	return &e.input
}

// Arsenal returns the weapon table.
func (e *Engine) Arsenal() *defs.Arsenal {
	return e.arsenal
}

// Damage returns the unbounded damage accumulator.
func (e *Engine) Damage() float64 { return e.damage }

// DisplayDamage returns the damage meter value in [0, 100].
func (e *Engine) DisplayDamage() float64 { return e.display }

// Pool returns the blood-pool level in [0, 1].
func (e *Engine) Pool() float64 { return e.pool }

// Ticks returns the number of ticks run so far.
func (e *Engine) Ticks() uint64 { return e.ticks }

// ApplyHit resolves one hit at (x, y). Unknown weapons use the default
// weapon. Coordinates are not validated; the surface clips naturally.
// Listeners are notified once every effect of the hit is in place.
func (e *Engine) ApplyHit(x, y float64, weapon defs.WeaponID) {
	def := e.arsenal.Lookup(weapon)

	e.addDamage(def.Damage)
	e.addPool(def.PoolIncrement)
	e.shake = Shake{Frames: config.ShakeFrames, Power: def.Shake}

	if def.Splat == defs.SplatSlash {
		e.spawnSlash(x, y)
	} else {
		e.spawnSplat(x, y, def.Splat)
	}
	e.spawnDroplets(x, y, def.Droplets)
	e.spawnBruise(x, y)

	if def.ID == defs.WeaponKnife {
		e.spawnDripSource(x, y)
		e.spawnWound(x, y)
	}

	if text := e.input.Trimmed(); text != "" {
		e.spawnTag(text, x, y)
	}

	e.dispatch(event.HitApplied, event.HitInfo{Weapon: def, X: x, Y: y})
}

// ReleaseText launches the typed rage text as a burst of tags near the
// lower centre of the surface and clears the input. Blank input spawns
// nothing and leaves the buffer untouched. It returns the number of tags
// spawned.
func (e *Engine) ReleaseText() int {
	text := e.input.Trimmed()
	if text == "" {
		return 0
	}

	cx := e.width * config.ReleaseX
	cy := e.height * config.ReleaseY
	for i := 0; i < config.TagsPerRelease; i++ {
		e.spawnTag(text, cx+e.rng.Range(-60, 60), cy+e.rng.Range(-25, 25))
	}
	e.input.Clear()

	e.dispatch(event.RageReleased, text)
	return config.TagsPerRelease
}

func (e *Engine) addDamage(v float64) {
	e.damage += v
	e.display = utils.Clamp(e.damage, 0, config.DamageMax)
}

func (e *Engine) addPool(v float64) {
	if v <= 0 {
		return
	}
	e.pool = min(1, e.pool+v)
}

func (e *Engine) dispatch(t event.EventType, data any) {
	if e.dispatcher == nil {
		return
	}
	e.dispatcher.Dispatch(event.Event{Type: t, Data: data})
}

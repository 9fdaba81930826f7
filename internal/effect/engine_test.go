package effect

import (
	"math"
	"testing"

	"rage-room/internal/config"
	"rage-room/internal/defs"
	"rage-room/internal/event"
	"rage-room/internal/utils"
)

const (
	testWidth  = 800.0
	testHeight = 600.0
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testWidth, testHeight, defs.NewArsenal(), utils.NewPRNGService(1234), nil)
}

type hitRecorder struct {
	hits  []event.HitInfo
	rages []string
}

func (r *hitRecorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.HitApplied:
		r.hits = append(r.hits, e.Data.(event.HitInfo))
	case event.RageReleased:
		r.rages = append(r.rages, e.Data.(string))
	}
}

func TestApplyHitAddsWeaponDamage(t *testing.T) {
	tests := []struct {
		weapon defs.WeaponID
		damage float64
	}{
		{defs.WeaponFist, 10},
		{defs.WeaponBat, 14},
		{defs.WeaponHammer, 16},
		{defs.WeaponKnife, 18},
		{"bazooka", 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.weapon), func(t *testing.T) {
			e := newTestEngine(t)
			before := e.Damage()
			e.ApplyHit(200, 200, tt.weapon)
			if got := e.Damage() - before; got != tt.damage {
				t.Errorf("damage increased by %v, want %v", got, tt.damage)
			}
		})
	}
}

func TestApplyHitDropletBurst(t *testing.T) {
	tests := []struct {
		weapon   defs.WeaponID
		droplets int
	}{
		{defs.WeaponFist, 45},
		{defs.WeaponBat, 60},
		{defs.WeaponHammer, 70},
		{defs.WeaponKnife, 55},
		{"bazooka", 45},
	}

	counts := map[defs.WeaponID]int{}
	for _, tt := range tests {
		e := newTestEngine(t)
		e.ApplyHit(200, 200, tt.weapon)
		got := len(e.Snapshot().Particles)
		if got != tt.droplets {
			t.Errorf("%s: droplets = %d, want %d", tt.weapon, got, tt.droplets)
		}
		counts[tt.weapon] = got
	}

	for _, id := range defs.WeaponOrder {
		if counts[id] < counts[defs.WeaponFist] || counts[id] > counts[defs.WeaponHammer] {
			t.Errorf("%s: %d droplets outside fist..hammer range", id, counts[id])
		}
	}
}

func TestDisplayDamageIsClamped(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 20; i++ {
		e.ApplyHit(100, 100, defs.WeaponKnife)
		if d := e.DisplayDamage(); d < 0 || d > config.DamageMax {
			t.Fatalf("display damage %v out of range after %d hits", d, i+1)
		}
	}
	if e.DisplayDamage() != config.DamageMax {
		t.Errorf("display = %v, want %v", e.DisplayDamage(), config.DamageMax)
	}
	if e.Damage() != 20*18 {
		t.Errorf("accumulator = %v, want %v (it must stay unbounded)", e.Damage(), 20*18)
	}
}

func TestPoolIsMonotoneAndCapped(t *testing.T) {
	e := newTestEngine(t)
	prev := e.Pool()
	for i := 0; i < 40; i++ {
		e.ApplyHit(float64(50+i*10), 300, defs.WeaponKnife)
		for j := 0; j < 30; j++ {
			e.Tick()
			p := e.Pool()
			if p < prev {
				t.Fatalf("pool decreased from %v to %v", prev, p)
			}
			if p > 1 {
				t.Fatalf("pool %v exceeds 1", p)
			}
			prev = p
		}
	}
	if e.Pool() != 1 {
		t.Errorf("pool = %v, want it to saturate at 1", e.Pool())
	}
}

func TestSplatDriesToFloor(t *testing.T) {
	e := newTestEngine(t)
	e.ApplyHit(300, 200, defs.WeaponHammer)

	ticks := int(math.Ceil((config.SplatBlobAlpha-config.SplatAlphaMin)/config.SplatDecay)) + 10
	for i := 0; i < ticks; i++ {
		e.Tick()
	}
	splats := e.Snapshot().Splats
	if len(splats) != 1 {
		t.Fatalf("expected the splat to survive, got %d splats", len(splats))
	}
	if splats[0].Alpha != config.SplatAlphaMin {
		t.Fatalf("alpha = %v, want floor %v", splats[0].Alpha, config.SplatAlphaMin)
	}

	for i := 0; i < 5000; i++ {
		e.Tick()
	}
	splats = e.Snapshot().Splats
	if len(splats) != 1 || splats[0].Alpha != config.SplatAlphaMin {
		t.Errorf("splat must stay at the floor forever, got %+v", splats)
	}
}

func TestParticlesFadeOut(t *testing.T) {
	e := newTestEngine(t)
	e.ApplyHit(400, 100, defs.WeaponFist)
	if n := len(e.Snapshot().Particles); n != 45 {
		t.Fatalf("expected 45 droplets, got %d", n)
	}

	bound := int(math.Ceil(1/config.ParticleDecay)) + 1
	for i := 0; i < bound; i++ {
		e.Tick()
	}
	if n := len(e.Snapshot().Particles); n != 0 {
		t.Fatalf("%d particles alive after %d ticks", n, bound)
	}

	e.Tick()
	if n := len(e.Snapshot().Particles); n != 0 {
		t.Errorf("re-ticking revived %d particles", n)
	}
}

func TestParticleRemovedBelowSurface(t *testing.T) {
	e := newTestEngine(t)
	e.particles.Push(Particle{X: 10, Y: testHeight + config.ParticleMargin - 1, VY: 5, Alpha: 1})
	e.Tick()
	if e.particles.Len() != 0 {
		t.Error("a particle that fell past the margin must be removed")
	}
}

func TestSourceLifetime(t *testing.T) {
	tests := []struct {
		name string
		src  DripSource
		want int
	}{
		{"life bound", DripSource{Rate: config.DripSourceRate, Life: config.DripSourceLife}, config.DripSourceLife},
		{"already below threshold", DripSource{Rate: 0.01, Life: 900}, 1},
		{"zero life", DripSource{Rate: 0.45, Life: 0}, 1},
	}
	for _, tt := range tests {
		if got := SourceLifetime(tt.src); got != tt.want {
			t.Errorf("%s: SourceLifetime = %d, want %d", tt.name, got, tt.want)
		}
	}

	// rate-bound: ln(0.04/0.45)/ln(0.9992) ~ 3024.3
	got := SourceLifetime(DripSource{Rate: 0.45, Life: 1 << 20})
	if got < 3020 || got > 3030 {
		t.Errorf("rate-bound lifetime = %d, want about 3025", got)
	}
}

func TestDripSourceTerminates(t *testing.T) {
	e := newTestEngine(t)
	e.ApplyHit(100, 100, defs.WeaponKnife)
	bound := SourceLifetime(e.sources.Items()[0])

	for i := 0; i < bound-1; i++ {
		e.Tick()
	}
	if e.sources.Len() != 1 {
		t.Fatalf("source removed early, after %d ticks", bound-1)
	}
	e.Tick()
	if e.sources.Len() != 0 {
		t.Errorf("source still alive after %d ticks", bound)
	}
}

func TestDripsFeedThePool(t *testing.T) {
	e := NewEngine(testWidth, 200, defs.NewArsenal(), utils.NewPRNGService(99), nil)
	e.ApplyHit(100, 150, defs.WeaponKnife)
	hitPool := e.Pool()
	splats := e.splats.Len()

	for i := 0; i < 200; i++ {
		e.Tick()
	}
	if e.Pool() <= hitPool {
		t.Errorf("pool %v did not grow from drip impacts (was %v)", e.Pool(), hitPool)
	}
	if e.splats.Len() <= splats {
		t.Error("landed drips must leave splats")
	}
	for _, s := range e.splats.Items()[splats:] {
		if s.Y < 200-16 || s.Y > 200-8 {
			t.Errorf("landing splat at y=%v, want near the floor", s.Y)
		}
	}
}

func TestDripDiscardedWhenTransparent(t *testing.T) {
	e := newTestEngine(t)
	e.drips.Push(Drip{X: 10, Y: 10, VY: 0, W: 3, H: 10, Alpha: config.DripDecay / 2})
	e.Tick()
	if e.drips.Len() != 0 {
		t.Error("a fully transparent drip must be discarded")
	}
}

func TestCapacitiesHold(t *testing.T) {
	e := newTestEngine(t)
	e.Input().InsertString("AGAIN")
	weapons := defs.WeaponOrder
	for i := 0; i < 400; i++ {
		e.ApplyHit(float64(i%700), float64(i%500), weapons[i%len(weapons)])
		e.ReleaseText()
		e.Input().InsertString("AGAIN")
		e.Tick()

		if e.splats.Len() > config.MaxSplats ||
			e.particles.Len() > config.MaxParticles ||
			e.sources.Len() > config.MaxDripSources ||
			e.drips.Len() > config.MaxDrips ||
			e.tags.Len() > config.MaxTags ||
			e.bruises.Len() > config.MaxBruises ||
			e.wounds.Len() > config.MaxWounds {
			t.Fatalf("capacity exceeded after %d rounds", i+1)
		}
	}
}

func TestKnifeScenario(t *testing.T) {
	rec := &hitRecorder{}
	d := event.NewDispatcher()
	d.Subscribe(event.HitApplied, rec)
	e := NewEngine(testWidth, testHeight, defs.NewArsenal(), utils.NewPRNGService(5), d)

	e.ApplyHit(100, 100, defs.WeaponKnife)
	f := e.Snapshot()

	if len(f.Splats) != 1 || f.Splats[0].Kind != defs.SplatSlash {
		t.Fatalf("expected one slash splat, got %+v", f.Splats)
	}
	if len(f.Splats[0].Spikes) != 0 {
		t.Error("slash splats have no spikes")
	}
	if len(f.DripSources) != 1 || f.DripSources[0].X != 100 || f.DripSources[0].Y != 100 {
		t.Fatalf("expected one drip source at (100,100), got %+v", f.DripSources)
	}
	if len(f.Particles) != 55 {
		t.Errorf("droplets = %d, want 55", len(f.Particles))
	}
	if len(f.Tags) != 0 {
		t.Errorf("no text typed, got %d tags", len(f.Tags))
	}
	if len(f.Wounds) != 1 {
		t.Errorf("wounds = %d, want 1", len(f.Wounds))
	}
	if e.Damage() != 18 {
		t.Errorf("damage = %v, want 18", e.Damage())
	}
	if len(rec.hits) != 1 || rec.hits[0].Weapon.ID != defs.WeaponKnife || rec.hits[0].X != 100 {
		t.Errorf("unexpected hit events %+v", rec.hits)
	}
}

func TestBlobSplatSpikes(t *testing.T) {
	tests := []struct {
		weapon defs.WeaponID
		radius float64
		spikes int
	}{
		{defs.WeaponFist, 34, config.SpikesSoft},
		{defs.WeaponBat, 52, config.SpikesHeavy},
		{defs.WeaponHammer, 60, config.SpikesCrack},
	}
	for _, tt := range tests {
		e := newTestEngine(t)
		e.ApplyHit(10, 10, tt.weapon)
		s := e.Snapshot().Splats[0]
		if s.Radius != tt.radius || len(s.Spikes) != tt.spikes {
			t.Errorf("%s: radius %v spikes %d, want %v and %d", tt.weapon, s.Radius, len(s.Spikes), tt.radius, tt.spikes)
		}
		for _, sp := range s.Spikes {
			if sp.Length < s.Radius*0.35 || sp.Length >= s.Radius*1.05 {
				t.Errorf("%s: spike length %v outside [0.35r, 1.05r)", tt.weapon, sp.Length)
			}
		}
		if len(e.Snapshot().DripSources) != 0 {
			t.Errorf("%s must not start bleeding", tt.weapon)
		}
	}
}

func TestHitWithTypedTextSpawnsTag(t *testing.T) {
	e := newTestEngine(t)
	e.Input().InsertString("  why  ")
	e.ApplyHit(250, 250, defs.WeaponBat)

	tags := e.Snapshot().Tags
	if len(tags) != 1 || tags[0].Text != "why" {
		t.Fatalf("expected one trimmed tag, got %+v", tags)
	}
	if e.Input().String() != "  why  " {
		t.Error("a hit must not consume the typed text")
	}
}

func TestReleaseText(t *testing.T) {
	rec := &hitRecorder{}
	d := event.NewDispatcher()
	d.Subscribe(event.RageReleased, rec)
	e := NewEngine(testWidth, testHeight, defs.NewArsenal(), utils.NewPRNGService(8), d)

	e.Input().InsertString("I HATE YOU")
	if n := e.ReleaseText(); n != 4 {
		t.Fatalf("ReleaseText spawned %d tags, want 4", n)
	}
	tags := e.Snapshot().Tags
	if len(tags) != 4 {
		t.Fatalf("tags = %d, want 4", len(tags))
	}
	cx, cy := testWidth*config.ReleaseX, testHeight*config.ReleaseY
	for _, tag := range tags {
		if tag.Text != "I HATE YOU" {
			t.Errorf("tag text %q", tag.Text)
		}
		if math.Abs(tag.X-cx) > 70 || math.Abs(tag.Y-cy) > 33 {
			t.Errorf("tag at (%v, %v) is not near the lower centre (%v, %v)", tag.X, tag.Y, cx, cy)
		}
	}
	if e.Input().String() != "" {
		t.Errorf("input not cleared: %q", e.Input().String())
	}
	if len(rec.rages) != 1 || rec.rages[0] != "I HATE YOU" {
		t.Errorf("unexpected rage events %v", rec.rages)
	}
}

func TestReleaseBlankText(t *testing.T) {
	for _, in := range []string{"", "   "} {
		e := newTestEngine(t)
		e.Input().InsertString(in)
		if n := e.ReleaseText(); n != 0 {
			t.Errorf("%q: spawned %d tags", in, n)
		}
		if len(e.Snapshot().Tags) != 0 {
			t.Errorf("%q: tags spawned", in)
		}
		if e.Input().String() != in {
			t.Errorf("%q: input changed to %q", in, e.Input().String())
		}
	}
}

func TestTagLifecycle(t *testing.T) {
	e := newTestEngine(t)
	e.tags.Push(Tag{Text: "x", Alpha: 1, Life: config.TagFadeLife + 5})

	for i := 0; i < 5; i++ {
		e.Tick()
		if a := e.tags.Items()[0].Alpha; a != 1 {
			t.Fatalf("alpha %v changed before the fade threshold", a)
		}
	}
	e.Tick()
	if a := e.tags.Items()[0].Alpha; a >= 1 {
		t.Fatalf("alpha %v should start fading below the threshold", a)
	}
	for i := 0; i < config.TagFadeLife && e.tags.Len() > 0; i++ {
		e.Tick()
	}
	if e.tags.Len() != 0 {
		t.Error("tag must be removed once its life runs out")
	}
}

func TestShakeDecaysToRest(t *testing.T) {
	e := newTestEngine(t)
	e.ApplyHit(100, 100, defs.WeaponHammer)
	for i := 0; i < config.ShakeFrames; i++ {
		e.Tick()
		f := e.Snapshot()
		if math.Abs(f.ShakeX) > 12 || math.Abs(f.ShakeY) > 12 {
			t.Fatalf("shake offset (%v, %v) exceeds the hammer power", f.ShakeX, f.ShakeY)
		}
	}
	e.Tick()
	if f := e.Snapshot(); f.ShakeX != 0 || f.ShakeY != 0 {
		t.Errorf("shake must settle, got (%v, %v)", f.ShakeX, f.ShakeY)
	}
}

func TestBruiseAlphaFollowsDamage(t *testing.T) {
	e := newTestEngine(t)
	e.ApplyHit(100, 100, defs.WeaponFist)
	if a := e.bruises.Items()[0].Alpha; math.Abs(a-10.0/config.BruiseDamageFactor) > 1e-9 {
		t.Errorf("first bruise alpha = %v, want %v", a, 10.0/config.BruiseDamageFactor)
	}
	for i := 0; i < 12; i++ {
		e.ApplyHit(100, 100, defs.WeaponHammer)
	}
	last := e.bruises.Items()[e.bruises.Len()-1]
	if last.Alpha != config.BruiseAlphaMax {
		t.Errorf("bruise alpha = %v, want cap %v", last.Alpha, config.BruiseAlphaMax)
	}
}

func TestWoundKeepsFloor(t *testing.T) {
	e := newTestEngine(t)
	e.ApplyHit(100, 100, defs.WeaponKnife)
	for i := 0; i < 1000; i++ {
		e.Tick()
	}
	if a := e.wounds.Items()[0].Alpha; a != config.WoundAlphaMin {
		t.Errorf("wound alpha = %v, want floor %v", a, config.WoundAlphaMin)
	}
}

func TestResize(t *testing.T) {
	e := newTestEngine(t)
	e.Resize(1000, 500)
	if w, h := e.Size(); w != 1000 || h != 500 {
		t.Errorf("size = %vx%v", w, h)
	}
	if f := e.Snapshot(); f.Width != 1000 || f.Height != 500 {
		t.Errorf("snapshot size = %vx%v", f.Width, f.Height)
	}
}

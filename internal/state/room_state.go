// internal/state/room_state.go
package state

import (
	"log"

	"rage-room/internal/assets"
	"rage-room/internal/config"
	"rage-room/internal/defs"
	"rage-room/internal/effect"
	"rage-room/internal/event"
	"rage-room/internal/input"
	"rage-room/internal/ui"
	"rage-room/internal/utils"
	"rage-room/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	nameFontSize  = 28
	flashFontSize = 34
)

// RoomOptions: всё, что комната получает снаружи.
type RoomOptions struct {
	Profile    config.Profile
	Arsenal    *defs.Arsenal
	Seed       int64
	Dispatcher *event.Dispatcher
	Fonts      *assets.Fonts
}

// RoomState: единственное рабочее состояние: цель, эффекты и HUD.
type RoomState struct {
	sm         *StateMachine
	dispatcher *event.Dispatcher
	fonts      *assets.Fonts

	engine   *effect.Engine
	renderer *render.EffectRenderer
	hud      *ui.HUD
	bridge   *input.Bridge
	avatar   *ui.AvatarCard
	flashes  *ui.IconFlashes

	scene         *ebiten.Image // всё, что трясётся при ударе
	width, height int
}

func NewRoomState(sm *StateMachine, opts RoomOptions) *RoomState {
	rs := newRoom(sm, opts)
	rs.renderer = render.NewEffectRenderer(render.DefaultPalette(), boldSource(opts.Fonts), utils.NewPRNGService(opts.Seed+1))
	rs.avatar.SetImage(ebiten.NewImageFromImage(assets.Avatar(opts.Profile, ui.AvatarImageSize)))
	return rs
}

// newRoom собирает всё, кроме GPU-ресурсов: движок, HUD, ввод и слушателей.
func newRoom(sm *StateMachine, opts RoomOptions) *RoomState {
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	surfaceH := float64(SurfaceHeight(config.ScreenHeight))

	engine := effect.NewEngine(config.ScreenWidth, surfaceH, opts.Arsenal, utils.NewPRNGService(opts.Seed), opts.Dispatcher)
	hud := ui.NewHUD(engine.Arsenal(), opts.Fonts)

	rs := &RoomState{
		sm:         sm,
		dispatcher: opts.Dispatcher,
		fonts:      opts.Fonts,
		engine:     engine,
		hud:        hud,
		bridge:     input.NewBridge(engine, hud),
		avatar:     ui.NewAvatarCard(nil, opts.Profile.Name),
		flashes:    ui.NewIconFlashes(),
	}
	rs.Layout(config.ScreenWidth, config.ScreenHeight)
	return rs
}

func boldSource(f *assets.Fonts) *text.GoTextFaceSource {
	if f == nil {
		return nil
	}
	return f.Bold
}

func (r *RoomState) Enter() {
	for _, l := range r.listeners() {
		r.dispatcher.Subscribe(event.HitApplied, l)
	}
	log.Printf("Entered room (target %q, %d weapons)", r.avatar.Name, r.engine.Arsenal().Len())
}

func (r *RoomState) Exit() {
	for _, l := range r.listeners() {
		r.dispatcher.Unsubscribe(event.HitApplied, l)
	}
}

func (r *RoomState) listeners() []event.Listener {
	return []event.Listener{r.avatar, r.flashes, r.hud}
}

// Update: один тик: ввод, симуляция, анимации HUD.
func (r *RoomState) Update(deltaTime float64) {
	r.step(r.bridge.Poll())
}

func (r *RoomState) step(ev input.Events) {
	r.bridge.Apply(ev)
	r.engine.Tick()
	r.flashes.Update()
	r.hud.Update(r.engine.DisplayDamage())
}

func (r *RoomState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	r.ensureScene()
	r.scene.Fill(config.BackgroundColor)
	r.avatar.Draw(r.scene, r.fonts.Face(nameFontSize))
	frame := r.engine.Snapshot()
	r.renderer.Draw(r.scene, frame, r.bridge.Cursor())
	r.flashes.Draw(r.scene, r.fonts.Face(flashFontSize))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(frame.ShakeX, frame.ShakeY)
	screen.DrawImage(r.scene, op)

	// HUD не трясётся
	r.hud.Draw(screen, r.engine.Input().String())
}

// Layout подгоняет поверхность под окно. Ebiten зовёт его каждый кадр,
// поэтому пересчёт идёт только при смене размера.
func (r *RoomState) Layout(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.engine.Resize(float64(width), float64(SurfaceHeight(height)))
	r.hud.Layout(width, height)
	r.avatar.Layout(width)
}

// ensureScene пересоздаёт offscreen-сцену под текущий размер поверхности.
func (r *RoomState) ensureScene() {
	w, h := max(r.width, 1), SurfaceHeight(r.height)
	if r.scene != nil {
		if b := r.scene.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		r.scene.Deallocate()
	}
	r.scene = ebiten.NewImage(w, h)
}

// SurfaceHeight: высота области эффектов над HUD.
func SurfaceHeight(windowHeight int) int {
	return max(windowHeight-config.HUDHeight, 1)
}

package state

import (
	"testing"

	"rage-room/internal/config"
	"rage-room/internal/event"
	"rage-room/internal/input"
)

func TestRoomLayoutResizesSurface(t *testing.T) {
	r := newRoom(NewStateMachine(), RoomOptions{Seed: 3})
	top := r.hud.Top()

	r.Layout(1000, 700)
	w, h := r.engine.Size()
	if w != 1000 || h != float64(700-config.HUDHeight) {
		t.Errorf("engine size = %vx%v, want 1000x%d", w, h, 700-config.HUDHeight)
	}
	if r.hud.Top() == top || r.hud.Top() != 700-config.HUDHeight {
		t.Errorf("hud top = %d, was %d", r.hud.Top(), top)
	}
}

func TestRoomStepOrder(t *testing.T) {
	d := event.NewDispatcher()
	r := newRoom(NewStateMachine(), RoomOptions{Seed: 3, Dispatcher: d})
	r.Enter()

	click := input.Events{CursorX: 100, CursorY: 100, Clicked: true}
	r.step(click)

	if r.engine.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", r.engine.Ticks())
	}
	if r.engine.Damage() != 10 {
		t.Errorf("damage = %v, want 10", r.engine.Damage())
	}
	if r.flashes.Len() != 1 {
		t.Errorf("flashes = %d, want 1", r.flashes.Len())
	}
	if r.hud.Meter.Ratio() <= 0 {
		t.Error("meter should move in the same tick as the hit")
	}

	r.Exit()
	r.step(click)
	if r.engine.Ticks() != 2 {
		t.Errorf("ticks = %d, want 2", r.engine.Ticks())
	}
	if r.flashes.Len() != 1 {
		t.Errorf("listeners should be gone after Exit, flashes = %d", r.flashes.Len())
	}
}

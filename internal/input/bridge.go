// Package input turns device state into engine calls.
package input

import (
	"log"

	"rage-room/internal/config"
	"rage-room/internal/defs"
	"rage-room/internal/effect"
	"rage-room/internal/ui"
	"rage-room/pkg/render"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var weaponKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Events: всё, что пришло с устройств за один тик.
type Events struct {
	CursorX, CursorY int
	Clicked          bool
	Chars            []rune
	Backspace        bool
	Enter            bool
	Space            bool
	Escape           bool
	Paste            bool
	WeaponKey        int // 1..4, 0 если не нажата
}

// Bridge связывает мышь, клавиатуру и буфер обмена с движком и HUD.
type Bridge struct {
	engine *effect.Engine
	hud    *ui.HUD
	paste  func() (string, error)
	chars  []rune
	cursor render.Cursor
}

func NewBridge(engine *effect.Engine, hud *ui.HUD) *Bridge {
	return &Bridge{engine: engine, hud: hud, paste: clipboard.ReadAll}
}

// Update опрашивает ebiten и применяет результат.
func (b *Bridge) Update() {
	b.Apply(b.Poll())
}

// Poll собирает состояние устройств за текущий тик.
func (b *Bridge) Poll() Events {
	var e Events
	e.CursorX, e.CursorY = ebiten.CursorPosition()
	e.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	e.Paste = ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV)
	if !ctrl {
		b.chars = ebiten.AppendInputChars(b.chars[:0])
		e.Chars = b.chars
	}

	e.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	e.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	e.Space = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	e.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	for i, k := range weaponKeys {
		if inpututil.IsKeyJustPressed(k) {
			e.WeaponKey = i + 1
		}
	}
	return e
}

// Apply переводит события тика в вызовы движка.
func (b *Bridge) Apply(e Events) {
	w, h := b.engine.Size()
	b.cursor = render.Cursor{
		X:      float64(e.CursorX),
		Y:      float64(e.CursorY),
		Inside: insideSurface(e.CursorX, e.CursorY, w, h),
	}
	box := b.hud.Box

	if box.Focused {
		buf := b.engine.Input()
		if e.Paste {
			if s, err := b.paste(); err != nil {
				log.Println("clipboard paste failed:", err)
			} else {
				buf.InsertString(s)
			}
		}
		for _, r := range e.Chars {
			buf.Insert(r)
		}
		if e.Backspace {
			buf.Backspace()
		}
		if e.Escape {
			box.Focus(false)
		}
	} else {
		if e.Space {
			b.hud.PressHit()
			b.hit()
		}
		if id, ok := WeaponForKey(e.WeaponKey); ok {
			b.hud.Select(id)
		}
	}

	if e.Enter {
		b.hud.PressRelease()
		b.engine.ReleaseText()
	}

	if e.Clicked {
		b.click(e.CursorX, e.CursorY)
	}
}

func (b *Bridge) click(x, y int) {
	if b.cursor.Inside {
		b.engine.ApplyHit(b.cursor.X, b.cursor.Y, b.hud.Selected())
		return
	}
	action := b.hud.HitTest(x, y)
	switch action.Kind {
	case ui.ActionWeapon:
		b.hud.Select(action.Weapon)
	case ui.ActionHit:
		b.hud.PressHit()
		b.hit()
	case ui.ActionRelease:
		b.hud.PressRelease()
		b.engine.ReleaseText()
	case ui.ActionText:
		b.hud.Box.Focus(true)
	default:
		b.hud.Box.Focus(false)
	}
}

// hit бьёт в точку курсора, а если курсор вне поверхности, то в точку по умолчанию.
func (b *Bridge) hit() {
	w, h := b.engine.Size()
	x, y := hitPoint(b.cursor, w, h)
	b.engine.ApplyHit(x, y, b.hud.Selected())
}

// Cursor возвращает позицию курсора для прицела.
func (b *Bridge) Cursor() render.Cursor { return b.cursor }

// WeaponForKey сопоставляет цифру 1..4 оружию из defs.WeaponOrder.
func WeaponForKey(n int) (defs.WeaponID, bool) {
	if n < 1 || n > len(defs.WeaponOrder) {
		return "", false
	}
	return defs.WeaponOrder[n-1], true
}

func hitPoint(c render.Cursor, w, h float64) (float64, float64) {
	if c.Inside {
		return c.X, c.Y
	}
	return w * config.DefaultHitX, h * config.DefaultHitY
}

func insideSurface(x, y int, w, h float64) bool {
	return x >= 0 && y >= 0 && float64(x) < w && float64(y) < h
}

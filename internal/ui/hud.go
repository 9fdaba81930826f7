// internal/ui/hud.go
package ui

import (
	"image"
	"strconv"

	"rage-room/internal/assets"
	"rage-room/internal/config"
	"rage-room/internal/defs"
	"rage-room/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin     = 12
	hudGap        = 8
	weaponButtonW = 92
	actionButtonW = 110
	hudRowHeight  = 40
	meterHeight   = 20
	labelFontSize = 16
	meterFontSize = 13
)

// ActionKind: что означает клик по HUD.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionWeapon
	ActionHit
	ActionRelease
	ActionText
)

// Action: результат HitTest.
type Action struct {
	Kind   ActionKind
	Weapon defs.WeaponID
}

type weaponButton struct {
	*Button
	id defs.WeaponID
}

// HUD: нижняя панель: оружие, поле ввода, HIT/RELEASE и шкала урона.
// Панель не трясётся вместе со сценой.
type HUD struct {
	fonts    *assets.Fonts
	weapons  []weaponButton
	hit      *Button
	release  *Button
	Box      *TextBox
	Meter    *DamageMeter
	selected defs.WeaponID
	top      int
	width    int
}

// NewHUD создаёт панель с кнопками в порядке defs.WeaponOrder.
func NewHUD(arsenal *defs.Arsenal, fonts *assets.Fonts) *HUD {
	if arsenal == nil {
		arsenal = defs.NewArsenal()
	}
	h := &HUD{
		fonts:    fonts,
		hit:      NewButton(image.Rectangle{}, "HIT"),
		release:  NewButton(image.Rectangle{}, "RELEASE"),
		Box:      NewTextBox(image.Rectangle{}, "type what makes you angry..."),
		Meter:    NewDamageMeter(0, 0, 0, 0),
		selected: defs.DefaultWeapon,
	}
	for i, id := range defs.WeaponOrder {
		label := strconv.Itoa(i+1) + " " + arsenal.Lookup(id).Name
		h.weapons = append(h.weapons, weaponButton{Button: NewButton(image.Rectangle{}, label), id: id})
	}
	h.Select(defs.DefaultWeapon)
	h.Layout(config.ScreenWidth, config.ScreenHeight)
	return h
}

// Layout раскладывает элементы по нижней полосе экрана.
func (h *HUD) Layout(width, height int) {
	h.width = width
	h.top = height - config.HUDHeight
	y := h.top + hudMargin

	x := hudMargin
	for _, b := range h.weapons {
		b.Rect = image.Rect(x, y, x+weaponButtonW, y+hudRowHeight)
		x += weaponButtonW + hudGap
	}

	right := width - hudMargin
	h.release.Rect = image.Rect(right-actionButtonW, y, right, y+hudRowHeight)
	right -= actionButtonW + hudGap
	h.hit.Rect = image.Rect(right-actionButtonW, y, right, y+hudRowHeight)
	right -= actionButtonW + hudGap

	boxRight := max(right, x+hudRowHeight)
	h.Box.Rect = image.Rect(x, y, boxRight, y+hudRowHeight)

	my := y + hudRowHeight + hudGap
	h.Meter.X, h.Meter.Y = hudMargin, float32(my)
	h.Meter.W, h.Meter.H = float32(width-2*hudMargin), meterHeight
}

// Top возвращает Y верхней границы панели.
func (h *HUD) Top() int { return h.top }

// HitTest определяет, по какому элементу пришёлся клик.
func (h *HUD) HitTest(x, y int) Action {
	if y < h.top {
		return Action{}
	}
	for _, b := range h.weapons {
		if b.Contains(x, y) {
			return Action{Kind: ActionWeapon, Weapon: b.id}
		}
	}
	switch {
	case h.hit.Contains(x, y):
		return Action{Kind: ActionHit}
	case h.release.Contains(x, y):
		return Action{Kind: ActionRelease}
	case h.Box.Contains(x, y):
		return Action{Kind: ActionText}
	}
	return Action{}
}

// Select подсвечивает кнопку выбранного оружия.
func (h *HUD) Select(id defs.WeaponID) {
	h.selected = id
	for _, b := range h.weapons {
		b.Active = b.id == id
	}
}

func (h *HUD) Selected() defs.WeaponID { return h.selected }

// PressHit / PressRelease: анимация кнопок при срабатывании с клавиатуры.
func (h *HUD) PressHit()     { h.hit.Press() }
func (h *HUD) PressRelease() { h.release.Press() }

// OnEvent: удар подсвечивает кнопку использованного оружия.
func (h *HUD) OnEvent(e event.Event) {
	if e.Type != event.HitApplied {
		return
	}
	info, ok := e.Data.(event.HitInfo)
	if !ok {
		return
	}
	for _, b := range h.weapons {
		if b.id == info.Weapon.ID {
			b.Press()
		}
	}
}

// Update двигает каретку и шкалу урона.
func (h *HUD) Update(damage float64) {
	h.Box.Update()
	h.Meter.Update(damage)
}

func (h *HUD) Draw(screen *ebiten.Image, input string) {
	vector.DrawFilledRect(screen, 0, float32(h.top), float32(h.width), config.HUDHeight, config.HUDColor, false)

	label := h.fonts.Face(labelFontSize)
	for _, b := range h.weapons {
		b.Draw(screen, label)
	}
	h.hit.Draw(screen, label)
	h.release.Draw(screen, label)
	h.Box.Draw(screen, h.fonts.Small(labelFontSize), input)
	h.Meter.Draw(screen, h.fonts.Small(meterFontSize))
}

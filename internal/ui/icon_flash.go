// internal/ui/icon_flash.go
package ui

import (
	"rage-room/internal/config"
	"rage-room/internal/effect"
	"rage-room/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// IconFlash: короткая надпись оружия ("POW", "SLICE") в точке удара.
type IconFlash struct {
	Text   string
	X, Y   float64
	Frames int
}

// IconFlashes подписывается на HitApplied и держит активные вспышки.
type IconFlashes struct {
	flashes *effect.Seq[IconFlash]
}

func NewIconFlashes() *IconFlashes {
	return &IconFlashes{flashes: effect.NewSeq[IconFlash](config.MaxIconFlashes)}
}

func (f *IconFlashes) OnEvent(e event.Event) {
	if e.Type != event.HitApplied {
		return
	}
	info, ok := e.Data.(event.HitInfo)
	if !ok || info.Weapon.Icon == "" {
		return
	}
	f.flashes.Push(IconFlash{Text: info.Weapon.Icon, X: info.X, Y: info.Y, Frames: config.IconFlashFrames})
}

func (f *IconFlashes) Update() {
	f.flashes.Retain(func(fl *IconFlash) bool {
		fl.Frames--
		return fl.Frames > 0
	})
}

func (f *IconFlashes) Len() int { return f.flashes.Len() }

func (f *IconFlashes) Draw(screen *ebiten.Image, face text.Face) {
	if face == nil {
		return
	}
	f.flashes.Each(func(fl *IconFlash) {
		t := float64(fl.Frames) / config.IconFlashFrames
		scale := 1 + 0.6*(1-t)
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(fl.X, fl.Y-30*(1-t))
		op.ColorScale.ScaleWithColor(config.TextLightColor)
		op.ColorScale.ScaleAlpha(float32(t))
		text.Draw(screen, fl.Text, face, op)
	})
}

// internal/ui/button.go
package ui

import (
	"image"
	"math"
	"time"

	"rage-room/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет кликабельную кнопку в HUD.
type Button struct {
	Rect      image.Rectangle
	Text      string
	Active    bool
	LastClick time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Text: label}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Press запускает анимацию нажатия.
func (b *Button) Press() {
	b.LastClick = time.Now()
}

// pulse: короткое «вздутие» после клика, затухает экспоненциально
func pulse(elapsed time.Duration) float64 {
	return 1.0 + 0.12*math.Exp(-elapsed.Seconds()*8)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face text.Face) {
	scale := 1.0
	if !b.LastClick.IsZero() {
		scale = pulse(time.Since(b.LastClick))
	}
	w := float64(b.Rect.Dx()) * scale
	h := float64(b.Rect.Dy()) * scale
	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	cy := float64(b.Rect.Min.Y) + float64(b.Rect.Dy())/2
	x, y := float32(cx-w/2), float32(cy-h/2)

	bg := config.ButtonColor
	if b.Active {
		bg = config.ButtonActive
	}
	vector.DrawFilledRect(screen, x, y, float32(w), float32(h), bg, true)
	vector.StrokeRect(screen, x, y, float32(w), float32(h), 1, config.TextDimColor, true)

	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, b.Text, face, op)
}

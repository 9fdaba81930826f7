// internal/ui/text_box.go
package ui

import (
	"image"

	"rage-room/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	caretBlinkTicks = 30
	textBoxPadding  = 10
)

// TextBox: поле ввода «ярости». Сам текст хранится в движке,
// здесь только фокус, каретка и отрисовка.
type TextBox struct {
	Rect        image.Rectangle
	Placeholder string
	Focused     bool
	blink       int
}

func NewTextBox(rect image.Rectangle, placeholder string) *TextBox {
	return &TextBox{Rect: rect, Placeholder: placeholder}
}

func (t *TextBox) Contains(x, y int) bool {
	return image.Pt(x, y).In(t.Rect)
}

// Update двигает таймер мигания каретки.
func (t *TextBox) Update() {
	t.blink++
}

// Focus включает/выключает фокус и сбрасывает мигание,
// чтобы каретка сразу была видна.
func (t *TextBox) Focus(on bool) {
	t.Focused = on
	t.blink = 0
}

func (t *TextBox) caretVisible() bool {
	return t.Focused && (t.blink/caretBlinkTicks)%2 == 0
}

func (t *TextBox) Draw(screen *ebiten.Image, face text.Face, value string) {
	x, y := float32(t.Rect.Min.X), float32(t.Rect.Min.Y)
	w, h := float32(t.Rect.Dx()), float32(t.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.MeterBackColor, false)
	border := config.TextDimColor
	if t.Focused {
		border = config.ButtonActive
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	if face == nil {
		return
	}
	maxW := float64(t.Rect.Dx() - 2*textBoxPadding)
	shown, col := value, config.TextLightColor
	if value == "" && !t.Focused {
		shown, col = t.Placeholder, config.TextDimColor
	}
	shown = tailFitting(shown, maxW, func(s string) float64 { return text.Advance(s, face) })

	op := &text.DrawOptions{}
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(t.Rect.Min.X+textBoxPadding), float64(t.Rect.Min.Y)+float64(h)/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, shown, face, op)

	if t.caretVisible() {
		cx := float32(t.Rect.Min.X+textBoxPadding) + float32(text.Advance(shown, face)) + 2
		vector.StrokeLine(screen, cx, y+8, cx, y+h-8, 2, config.TextLightColor, true)
	}
}

// tailFitting отрезает начало строки, пока хвост не влезет в maxW.
func tailFitting(s string, maxW float64, measure func(string) float64) string {
	runes := []rune(s)
	for len(runes) > 0 && measure(string(runes)) > maxW {
		runes = runes[1:]
	}
	return string(runes)
}

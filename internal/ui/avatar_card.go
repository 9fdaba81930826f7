// internal/ui/avatar_card.go
package ui

import (
	"image"
	"math"
	"time"

	"rage-room/internal/config"
	"rage-room/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	cardPadding    = 20
	cardNameHeight = 44
	wobbleCycles   = 3.0
	softWobble     = 0.6

	// AvatarImageSize: сторона квадрата с фото внутри карточки
	AvatarImageSize = config.AvatarCardWidth - 2*cardPadding
)

// AvatarCard: карточка цели: фото и имя. На каждый удар карточка
// коротко вздрагивает; тяжёлое оружие трясёт сильнее и дольше.
type AvatarCard struct {
	Name  string
	image *ebiten.Image
	rect  image.Rectangle

	reactStart time.Time
	reactFor   time.Duration
	hard       bool
	now        func() time.Time
}

// NewAvatarCard создает карточку. img может быть nil.
func NewAvatarCard(img *ebiten.Image, name string) *AvatarCard {
	return &AvatarCard{Name: name, image: img, now: time.Now}
}

// SetImage заменяет фото на карточке.
func (c *AvatarCard) SetImage(img *ebiten.Image) {
	c.image = img
}

// Layout центрирует карточку на поверхности шириной width.
func (c *AvatarCard) Layout(width int) {
	c.rect = CardRect(width)
}

// CardRect возвращает прямоугольник карточки для поверхности шириной width.
func CardRect(width int) image.Rectangle {
	x := (width - config.AvatarCardWidth) / 2
	if x < 0 {
		x = 0
	}
	h := config.AvatarCardWidth + cardNameHeight
	return image.Rect(x, config.AvatarCardTop, x+config.AvatarCardWidth, config.AvatarCardTop+h)
}

func (c *AvatarCard) OnEvent(e event.Event) {
	if e.Type != event.HitApplied {
		return
	}
	info, ok := e.Data.(event.HitInfo)
	if !ok {
		return
	}
	c.hard = info.Weapon.Hard
	c.reactFor = config.HitReactSoftMs * time.Millisecond
	if c.hard {
		c.reactFor = config.HitReactHardMs * time.Millisecond
	}
	c.reactStart = c.now()
}

// Offset возвращает текущее смещение и масштаб фото.
func (c *AvatarCard) Offset() (dx, dy, scale float64) {
	if c.reactStart.IsZero() {
		return 0, 0, 1
	}
	elapsed := c.now().Sub(c.reactStart)
	if elapsed < 0 || elapsed >= c.reactFor {
		return 0, 0, 1
	}
	t := float64(elapsed) / float64(c.reactFor)
	amp := config.AvatarWobblePx * (1 - t)
	if !c.hard {
		amp *= softWobble
	}
	phase := t * wobbleCycles * 2 * math.Pi
	dx = amp * math.Sin(phase)
	dy = amp * 0.35 * math.Cos(phase)
	scale = 1 - 0.04*(1-t)
	return dx, dy, scale
}

func (c *AvatarCard) Draw(screen *ebiten.Image, face text.Face) {
	r := c.rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.CardColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.CardStroke, true)

	side := float64(AvatarImageSize)
	if c.image != nil && side > 0 {
		dx, dy, scale := c.Offset()
		b := c.image.Bounds()
		s := side / float64(b.Dx()) * scale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		// масштаб от центра квадрата
		inset := side * (1 - scale) / 2
		op.GeoM.Translate(float64(r.Min.X+cardPadding)+inset+dx, float64(r.Min.Y+cardPadding)+inset+dy)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(c.image, op)
	}

	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(r.Min.X)+float64(r.Dx())/2, float64(r.Max.Y)-cardNameHeight/2)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, c.Name, face, op)
}

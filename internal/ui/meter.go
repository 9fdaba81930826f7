// internal/ui/meter.go
package ui

import (
	"fmt"

	"rage-room/internal/config"
	"rage-room/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const meterSmoothing = 0.2

// DamageMeter отображает накопленный урон полосой 0..100%.
type DamageMeter struct {
	X, Y, W, H float32
	shown      float32
}

// NewDamageMeter создает новый индикатор урона.
func NewDamageMeter(x, y, w, h float32) *DamageMeter {
	return &DamageMeter{X: x, Y: y, W: w, H: h}
}

// Update плавно подтягивает полосу к текущему значению урона.
func (m *DamageMeter) Update(damage float64) {
	target := float32(utils.Clamp(damage, 0, config.DamageMax))
	m.shown = utils.Lerp(m.shown, target, meterSmoothing)
	if d := target - m.shown; d < 0.05 && d > -0.05 {
		m.shown = target
	}
}

// Ratio возвращает долю заполнения полосы.
func (m *DamageMeter) Ratio() float64 {
	return float64(m.shown) / config.DamageMax
}

// Label: подпись вида "DAMAGE 42%".
func (m *DamageMeter) Label() string {
	return fmt.Sprintf("DAMAGE %d%%", int(m.shown+0.5))
}

func (m *DamageMeter) Draw(screen *ebiten.Image, face text.Face) {
	vector.DrawFilledRect(screen, m.X, m.Y, m.W, m.H, config.MeterBackColor, false)
	if fill := m.W * float32(m.Ratio()); fill > 0 {
		vector.DrawFilledRect(screen, m.X, m.Y, fill, m.H, config.MeterFillColor, false)
	}
	vector.StrokeRect(screen, m.X, m.Y, m.W, m.H, 1, config.TextDimColor, true)

	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(m.X+m.W/2), float64(m.Y+m.H/2))
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, m.Label(), face, op)
}

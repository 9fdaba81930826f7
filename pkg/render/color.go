// pkg/render/color.go
package render

import (
	"image/color"

	"rage-room/internal/config"
	"rage-room/internal/utils"
)

// Palette holds every color the effect renderer paints with. Opaque
// colors; the per-entity alpha is applied on top.
type Palette struct {
	BloodCore   color.RGBA
	BloodEdge   color.RGBA
	BloodSlash  color.RGBA
	BloodBright color.RGBA
	Bruise      color.RGBA
	Highlight   color.RGBA
	Shadow      color.RGBA
	AimRing     color.NRGBA
	PoolTop     color.NRGBA
	PoolMiddle  color.NRGBA
	PoolBottom  color.NRGBA
	PoolStop    float64
	PoolGloss   color.NRGBA
}

// DefaultPalette builds the palette from the game config.
func DefaultPalette() Palette {
	return Palette{
		BloodCore:   config.BloodCore,
		BloodEdge:   config.BloodEdge,
		BloodSlash:  config.BloodSlash,
		BloodBright: config.BloodBright,
		Bruise:      config.BruiseColor,
		Highlight:   color.RGBA{255, 255, 255, 255},
		Shadow:      DarkenColor(config.BackgroundColor),
		AimRing:     config.AimRingColor,
		PoolTop:     config.PoolTop,
		PoolMiddle:  config.PoolMiddle,
		PoolBottom:  config.PoolBottom,
		PoolStop:    config.PoolStop,
		PoolGloss:   config.PoolGloss,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with a straight (non-premultiplied) alpha in [0, 1].
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := utils.Clamp(alpha, 0, 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// vertexColor is a straight-alpha color in the float form ebiten vertices use.
type vertexColor [4]float32

func toVertexColor(c color.NRGBA) vertexColor {
	return vertexColor{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

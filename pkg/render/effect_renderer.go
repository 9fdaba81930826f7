// pkg/render/effect_renderer.go
package render

import (
	"image"
	"image/color"
	"math"

	"rage-room/internal/config"
	"rage-room/internal/defs"
	"rage-room/internal/effect"
	"rage-room/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const fanSegments = 32

// Cursor is the pointer position relative to the effect surface.
type Cursor struct {
	X, Y   float64
	Inside bool
}

// EffectRenderer paints engine frames. It never mutates the frame; the
// only randomness it uses is cosmetic (streaks re-rolled every frame).
type EffectRenderer struct {
	palette  Palette
	tagFont  *text.GoTextFaceSource
	rng      *utils.PRNGService
	whiteImg *ebiten.Image
	whiteSub *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

// NewEffectRenderer creates a renderer. tagFont may be nil, in which case
// tags are not drawn.
func NewEffectRenderer(palette Palette, tagFont *text.GoTextFaceSource, rng *utils.PRNGService) *EffectRenderer {
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)

	return &EffectRenderer{
		palette:  palette,
		tagFont:  tagFont,
		rng:      rng,
		whiteImg: whiteImg,
		whiteSub: whiteImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vs:       make([]ebiten.Vertex, 0, fanSegments+2),
		is:       make([]uint16, 0, fanSegments*3),
	}
}

// Draw paints one frame in loop order: drips, bruises, wounds, splats,
// particles, tags, aim ring, pool.
func (r *EffectRenderer) Draw(dst *ebiten.Image, f effect.Frame, cursor Cursor) {
	r.drawDrips(dst, f.Drips)
	r.drawBruises(dst, f.Bruises)
	r.drawWounds(dst, f.Wounds)
	for i := range f.Splats {
		r.drawSplat(dst, &f.Splats[i])
	}
	r.drawParticles(dst, f.Particles)
	r.drawTags(dst, f.Tags)
	if cursor.Inside {
		vector.StrokeCircle(dst, float32(cursor.X), float32(cursor.Y), config.AimRingRadius, 2, r.palette.AimRing, true)
	}
	r.drawPool(dst, f.Width, f.Height, f.Pool)
}

func (r *EffectRenderer) drawDrips(dst *ebiten.Image, drips []effect.Drip) {
	for _, d := range drips {
		x, y, w, h := float32(d.X), float32(d.Y), float32(d.W), float32(d.H)
		vector.DrawFilledRect(dst, x, y, w, h, WithAlpha(r.palette.BloodCore, d.Alpha), true)
		// глянцевый блик
		vector.DrawFilledRect(dst, x+w*0.2, y+h*0.1, w*0.25, h*0.3, WithAlpha(r.palette.Highlight, d.Alpha*0.10), true)
	}
}

func (r *EffectRenderer) drawBruises(dst *ebiten.Image, bruises []effect.Bruise) {
	for _, b := range bruises {
		vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(b.Radius), WithAlpha(r.palette.Bruise, b.Alpha), true)
	}
}

func (r *EffectRenderer) drawWounds(dst *ebiten.Image, wounds []effect.Wound) {
	for _, w := range wounds {
		x0, y0, x1, y1 := lineEnds(w.X, w.Y, w.Length, w.Rotation)
		vector.StrokeLine(dst, x0, y0, x1, y1, 12, WithAlpha(r.palette.BloodCore, w.Alpha), true)

		// влажный блик, смещённый на 4px поперёк разреза
		ox := float32(-math.Sin(w.Rotation) * 4)
		oy := float32(math.Cos(w.Rotation) * 4)
		vector.StrokeLine(dst, x0+ox, y0+oy, x1+ox, y1+oy, 3, WithAlpha(r.palette.BloodBright, w.Alpha*0.7), true)

		if r.rng.Chance(0.12) {
			sx := float32(w.X + r.rng.Range(-10, 10))
			sy := float32(w.Y + w.DripOffset)
			ex := float32(w.X + r.rng.Range(-12, 12))
			ey := sy + float32(r.rng.Range(25, 85))
			vector.StrokeLine(dst, sx, sy, ex, ey, float32(r.rng.Range(2, 5)), WithAlpha(r.palette.BloodCore, w.Alpha), true)
		}
	}
}

func (r *EffectRenderer) drawSplat(dst *ebiten.Image, s *effect.Splat) {
	if s.Kind == defs.SplatSlash {
		x0, y0, x1, y1 := lineEnds(s.X, s.Y, s.Radius, s.Rotation)
		vector.StrokeLine(dst, x0, y0, x1, y1, 10, WithAlpha(r.palette.BloodSlash, s.Alpha), true)
		return
	}

	inner := toVertexColor(WithAlpha(r.palette.BloodCore, s.Alpha))
	outer := toVertexColor(WithAlpha(r.palette.BloodEdge, s.Alpha*0.55))
	r.vs, r.is = radialFan(r.vs[:0], r.is[:0], float32(s.X), float32(s.Y), float32(s.Radius), fanSegments, inner, outer)
	dst.DrawTriangles(r.vs, r.is, r.whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if len(s.Spikes) > 0 {
		var path vector.Path
		for _, sp := range s.Spikes {
			ang := sp.Angle + s.Rotation
			path.MoveTo(float32(s.X), float32(s.Y))
			path.LineTo(float32(s.X+math.Cos(ang)*sp.Length), float32(s.Y+math.Sin(ang)*sp.Length))
			path.LineTo(float32(s.X+math.Cos(ang+0.3)*sp.Length*0.55), float32(s.Y+math.Sin(ang+0.3)*sp.Length*0.55))
			path.Close()
		}
		r.fillPath(dst, &path, WithAlpha(r.palette.BloodCore, s.Alpha*0.65))
	}

	if r.rng.Chance(0.25) {
		sx := s.X + r.rng.Range(-12, 12)
		sy := s.Y + r.rng.Range(10, 18)
		ex := sx + r.rng.Range(-10, 10)
		ey := sy + r.rng.Range(25, 90)
		vector.StrokeLine(dst, float32(sx), float32(sy), float32(ex), float32(ey), float32(r.rng.Range(2, 4)), WithAlpha(r.palette.BloodCore, s.Alpha*0.55), true)
	}
}

func (r *EffectRenderer) drawParticles(dst *ebiten.Image, particles []effect.Particle) {
	for _, p := range particles {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), WithAlpha(r.palette.BloodCore, p.Alpha), true)
	}
}

// drawTags рисует надпись трижды: тень, красный слой и белый верх
func (r *EffectRenderer) drawTags(dst *ebiten.Image, tags []effect.Tag) {
	if r.tagFont == nil {
		return
	}
	layers := []struct {
		dx, dy float64
		col    color.RGBA
		alpha  float64
	}{
		{4, 4, r.palette.Shadow, 0.65},
		{-2, 1, r.palette.BloodCore, 1},
		{0, 0, r.palette.Highlight, 1},
	}

	for _, t := range tags {
		face := &text.GoTextFace{Source: r.tagFont, Size: t.Size}
		for _, l := range layers {
			op := &text.DrawOptions{}
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
			op.GeoM.Translate(l.dx, l.dy)
			op.GeoM.Rotate(t.Rotation)
			op.GeoM.Translate(t.X, t.Y)
			op.ColorScale.ScaleWithColor(WithAlpha(l.col, t.Alpha*l.alpha))
			text.Draw(dst, t.Text, face, op)
		}
	}
}

func (r *EffectRenderer) drawPool(dst *ebiten.Image, width, height, pool float64) {
	poolH := PoolHeight(height, pool)
	if poolH < config.PoolMinHeight {
		return
	}
	top := float32(height) - float32(poolH)
	mid := top + float32(float64(poolH)*r.palette.PoolStop)
	bottom := float32(height)
	w := float32(width)

	r.vs, r.is = gradientBand(r.vs[:0], r.is[:0], w, []float32{top, mid, bottom}, []vertexColor{
		toVertexColor(r.palette.PoolTop),
		toVertexColor(r.palette.PoolMiddle),
		toVertexColor(r.palette.PoolBottom),
	})
	dst.DrawTriangles(r.vs, r.is, r.whiteSub, nil)

	// глянцевая кромка
	vector.DrawFilledRect(dst, 0, top, w, float32(poolH)*0.14, r.palette.PoolGloss, false)
}

func (r *EffectRenderer) fillPath(dst *ebiten.Image, path *vector.Path, c color.NRGBA) {
	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	vc := toVertexColor(c)
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = vc[0]
		r.vs[i].ColorG = vc[1]
		r.vs[i].ColorB = vc[2]
		r.vs[i].ColorA = vc[3]
	}
	dst.DrawTriangles(r.vs, r.is, r.whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// PoolHeight returns the pool band height in pixels for a surface height.
func PoolHeight(height, pool float64) int {
	return int(math.Floor(height * config.PoolHeightFactor * utils.Clamp(pool, 0, 1)))
}

// lineEnds returns the end points of a segment of the given length
// centred on (x, y) and rotated by rot.
func lineEnds(x, y, length, rot float64) (x0, y0, x1, y1 float32) {
	dx := math.Cos(rot) * length / 2
	dy := math.Sin(rot) * length / 2
	return float32(x - dx), float32(y - dy), float32(x + dx), float32(y + dy)
}

func vertex(x, y float32, c vertexColor) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 1, SrcY: 1,
		ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3],
	}
}

// radialFan builds a triangle fan whose centre vertex has the inner color
// and rim vertices the outer color; the GPU interpolates the gradient.
func radialFan(vs []ebiten.Vertex, is []uint16, cx, cy, radius float32, segments int, inner, outer vertexColor) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	vs = append(vs, vertex(cx, cy, inner))
	for i := 0; i <= segments; i++ {
		ang := 2 * math.Pi * float64(i) / float64(segments)
		vs = append(vs, vertex(cx+radius*float32(math.Cos(ang)), cy+radius*float32(math.Sin(ang)), outer))
	}
	for i := 1; i <= segments; i++ {
		is = append(is, base, base+uint16(i), base+uint16(i+1))
	}
	return vs, is
}

// gradientBand builds a full-width vertical gradient through the given
// stops, one quad per pair of stops.
func gradientBand(vs []ebiten.Vertex, is []uint16, width float32, ys []float32, colors []vertexColor) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	for i, y := range ys {
		vs = append(vs, vertex(0, y, colors[i]), vertex(width, y, colors[i]))
	}
	for i := 0; i < len(ys)-1; i++ {
		tl := base + uint16(2*i)
		is = append(is, tl, tl+1, tl+2, tl+1, tl+3, tl+2)
	}
	return vs, is
}

package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"rage-room/internal/config"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var (
	silhouetteBack   = color.RGBA{36, 32, 38, 255}
	silhouetteMale   = color.RGBA{92, 86, 96, 255}
	silhouetteFemale = color.RGBA{110, 84, 100, 255}
)

// LoadAvatar декодирует фото цели и масштабирует его в квадрат size×size
// по правилу «cover»: изображение заполняет квадрат, лишнее обрезается.
// path может быть путём к файлу или data:-URI с base64, как его сохраняет
// экран подготовки.
func LoadAvatar(path string, size int) (image.Image, error) {
	r, name, err := openAvatar(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avatar %s: %w", name, err)
	}
	log.Printf("Loaded avatar %s (%s, %dx%d)", name, format, src.Bounds().Dx(), src.Bounds().Dy())
	return Cover(src, size), nil
}

func openAvatar(path string) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(path, "data:") {
		f, err := os.Open(path)
		if err != nil {
			return nil, path, fmt.Errorf("failed to open avatar: %w", err)
		}
		return f, path, nil
	}

	const name = "data URI"
	header, payload, ok := strings.Cut(strings.TrimPrefix(path, "data:"), ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return nil, name, errors.New("failed to open avatar: data URI is not base64")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, name, fmt.Errorf("failed to decode avatar base64: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), name, nil
}

// Cover вырезает из src центральную область с пропорциями квадрата
// и масштабирует её до size×size.
func Cover(src image.Image, size int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	b := src.Bounds()
	if b.Empty() {
		return dst
	}
	crop := CoverRect(b)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}

// CoverRect возвращает наибольший центрированный квадрат внутри b.
func CoverRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	side := min(w, h)
	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

// DefaultAvatar рисует силуэт-заглушку, когда фото нет.
func DefaultAvatar(gender string, size int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fg := silhouetteMale
	if gender == config.GenderFemale {
		fg = silhouetteFemale
	}

	s := float64(size)
	headX, headY, headR := s*0.5, s*0.38, s*0.2
	// Плечи: верхняя половина эллипса
	bodyX, bodyY, bodyRX, bodyRY := s*0.5, s*1.02, s*0.42, s*0.4
	hairR := 0.0
	if gender == config.GenderFemale {
		hairR = headR * 1.25
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			c := silhouetteBack
			switch {
			case inCircle(px, py, headX, headY, headR):
				c = fg
			case inEllipse(px, py, bodyX, bodyY, bodyRX, bodyRY):
				c = fg
			case hairR > 0 && py > headY-headR && inCircle(px, py, headX, headY+headR*0.3, hairR):
				c = darken(fg, 0.75)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Avatar возвращает фото из профиля или силуэт, если фото не загрузилось.
func Avatar(p config.Profile, size int) image.Image {
	if p.Image != "" {
		img, err := LoadAvatar(p.Image, size)
		if err == nil {
			return img
		}
		log.Printf("WARNING: %v. Using default avatar.", err)
	}
	return DefaultAvatar(p.Gender, size)
}

// darken затемняет цвет, сохраняя альфу
func darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func inCircle(x, y, cx, cy, r float64) bool {
	return math.Hypot(x-cx, y-cy) <= r
}

func inEllipse(x, y, cx, cy, rx, ry float64) bool {
	dx, dy := (x-cx)/rx, (y-cy)/ry
	return dx*dx+dy*dy <= 1
}

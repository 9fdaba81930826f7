package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the parsed font sources shared by the HUD and the renderer.
type Fonts struct {
	Bold    *text.GoTextFaceSource // rage tags, labels
	Regular *text.GoTextFaceSource // hints, text box
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	return &Fonts{Bold: bold, Regular: regular}, nil
}

// Face returns a bold face of the given size, or nil without fonts.
func (f *Fonts) Face(size float64) text.Face {
	if f == nil || f.Bold == nil {
		return nil
	}
	return &text.GoTextFace{Source: f.Bold, Size: size}
}

// Small returns a regular face of the given size, or nil without fonts.
func (f *Fonts) Small(size float64) text.Face {
	if f == nil || f.Regular == nil {
		return nil
	}
	return &text.GoTextFace{Source: f.Regular, Size: size}
}

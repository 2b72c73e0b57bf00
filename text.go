package tabstrip

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

// InitFonts loads the TTF used for tab labels. Call once before drawing.
func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

// InitDefaultFonts loads the bundled Go Regular face.
func InitDefaultFonts() error {
	return InitFonts(goregular.TTF)
}

func getFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func drawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	if fontSource == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, getFace(size), op)
}

func drawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	drawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

// MeasureText returns the rendered size of txt at the given face size.
// Returns zeros before InitFonts.
func MeasureText(txt string, size float64) (float64, float64) {
	if fontSource == nil {
		return 0, 0
	}
	return text.Measure(txt, getFace(size), 0)
}

package app

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  = map[float64]*text.GoTextFace{}
)

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("load page font: %v", err)
		return
	}
	fontSource = src
}

func getFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: fontSource, Size: size}
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
	if fontSource == nil {
		return
	}
	w, h := text.Measure(txt, getFace(size), 0)
	drawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

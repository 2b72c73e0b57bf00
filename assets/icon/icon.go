package icon

import (
	"image"
	"image/color"
)

// Theme colors from the bar's default style
var (
	accentBlue  = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	darkBG      = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	tabInactive = color.RGBA{R: 0x3A, G: 0x3A, B: 0x44, A: 0xFF}
	tabActive   = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	glowCol     = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	drawTabRow(img, s)
	drawIndicator(img, s)

	return img
}

// drawTabRow draws three tabs across the middle, the center one active and
// the outer two clipped at the edges to suggest horizontal overflow.
func drawTabRow(img *image.RGBA, s float64) {
	tabW := s * 0.30
	tabH := s * 0.36
	tabY := s * 0.22
	gap := s * 0.05
	r := s * 0.06

	centerX := s*0.5 - tabW/2

	fillRoundedRect(img, centerX-tabW-gap, tabY, tabW, tabH, r, tabInactive)
	fillRoundedRect(img, centerX+tabW+gap, tabY, tabW, tabH, r, tabInactive)
	fillRoundedRect(img, centerX, tabY, tabW, tabH, r, tabActive)

	// Label stub inside the active tab
	fillRoundedRect(img, centerX+tabW*0.2, tabY+tabH*0.4, tabW*0.6, tabH*0.18, s*0.02, darkBG)
}

// drawIndicator draws the capsule under the active tab with a soft glow.
func drawIndicator(img *image.RGBA, s float64) {
	capW := s * 0.34
	capH := s * 0.09
	capX := s*0.5 - capW/2
	capY := s * 0.66

	fillRoundedRect(img, capX-s*0.03, capY-s*0.03, capW+s*0.06, capH+s*0.06, capH, glowCol)
	fillRoundedRect(img, capX, capY, capW, capH, capH/2, accentBlue)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}

package tabstrip

import "image/color"

// Alignment places the slot row inside the viewport when the content does
// not overflow it.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeading
	AlignTrailing
)

// Default palette — dark theme.
var (
	ColorBackground   = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorLabel        = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorLabelActive  = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorIndicator    = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorIconInactive = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
)

// Style holds the visual and layout parameters of the bar. The indicator
// fill is part of the style so it can be overridden without threading a
// separate argument to the renderer.
type Style struct {
	ItemWidth float64
	Spacing   float64
	BarHeight float64

	FontSize float64
	IconSize float64

	IndicatorFill   color.Color
	IndicatorHeight float64
	IndicatorPadX   float64

	LabelColor       color.Color
	LabelActiveColor color.Color
	IconColor        color.Color
	IconActiveColor  color.Color
	BackgroundFill   color.Color // nil = transparent
}

func DefaultStyle() Style {
	return Style{
		ItemWidth:        90,
		Spacing:          0,
		BarHeight:        64,
		FontSize:         13,
		IconSize:         20,
		IndicatorFill:    ColorIndicator,
		IndicatorHeight:  4,
		IndicatorPadX:    8,
		LabelColor:       ColorLabel,
		LabelActiveColor: ColorLabelActive,
		IconColor:        ColorIconInactive,
		IconActiveColor:  ColorLabelActive,
	}
}

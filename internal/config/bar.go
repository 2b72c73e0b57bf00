package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/depeter/tabstrip"
)

// Items converts the configured tab list.
func (c *Config) Items() []tabstrip.Item {
	items := make([]tabstrip.Item, 0, len(c.Tabs))
	for _, t := range c.Tabs {
		if t.ID == "" {
			continue
		}
		items = append(items, tabstrip.Item{ID: t.ID, Title: t.Title, Icon: t.Icon})
	}
	return items
}

// Alignment parses the alignment setting, defaulting to center.
func (b BarConfig) ParseAlignment() tabstrip.Alignment {
	switch strings.ToLower(b.Alignment) {
	case "leading":
		return tabstrip.AlignLeading
	case "trailing":
		return tabstrip.AlignTrailing
	default:
		return tabstrip.AlignCenter
	}
}

// IndicatorFill parses the configured indicator color ("#RRGGBB"), or nil
// when unset or malformed so the default style fill stays in effect.
func (b BarConfig) IndicatorFill() color.Color {
	c, err := ParseHexColor(b.IndicatorColor)
	if err != nil {
		return nil
	}
	return c
}

// ParseHexColor parses "#RRGGBB" or "#RGB".
func ParseHexColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return nil, fmt.Errorf("hex color %q: want #RGB or #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

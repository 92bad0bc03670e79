package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color interprets a property as a CSS color. Hex notations (#rgb, #rrggbb,
// #rrggbbaa) and a small set of color names are recognized. Values like
// "default", "inherit" or "transparent" do not denote a color; Color will
// return false for them.
//
// TODO use standard palette
//
// https://pkg.go.dev/github.com/AntoineAugusti/colors#StringToHexColor
//
func (p Property) Color() (color.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if strings.HasPrefix(s, "#") {
		return hexColor(s[1:])
	}
	switch s {
	case "black":
		return color.Black, true
	case "white":
		return color.White, true
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}, true
	case "green":
		return color.RGBA{0, 0x80, 0, 0xff}, true
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}, true
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}, true
	}
	return nil, false
}

func hexColor(h string) (color.Color, bool) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return nil, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
}

// ColorString returns a hex representation "#rrggbb" for a color.
// A nil color is represented by "powderblue" (an X11 color and CSS color).
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

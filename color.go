package jigsaw

import "image/color"

// Default mask colors. The background is passable, ink marks cut lines and
// the claim color overwrites pixels once a fill has taken them.
var (
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.NRGBA{A: 255}
	Green = color.NRGBA{G: 255, A: 255}

	// Transparent is the zero pixel left in a piece outside its region.
	Transparent = color.NRGBA{}
)

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed digits parse as zero.
func Hex(hex string) color.NRGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	}

	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)} //nolint:gosec // each value is at most 255
}

func parseHex(s string, val *uint32) {
	*val = 0
	for _, c := range s {
		*val <<= 4
		switch {
		case c >= '0' && c <= '9':
			*val |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			*val |= uint32(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			*val |= uint32(c - 'A' + 10)
		}
	}
}

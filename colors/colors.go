// Package colors maps user-facing color names onto terminal colors and
// compiles text styles into SGR escape sequences.
//
// [Parse] accepts, in order of precedence: the 16 basic ANSI color names
// ("red", "bright blue", ...), hex literals ("#7fd", "#ffcc00"), the
// space-separated CSS extended color names ("alice blue", "rebecca purple",
// ...), and the Xterm user-palette names ("user bright cyan"). Matching is
// case- and space-sensitive.
package colors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor indicates a color literal that matched no table entry.
var ErrUnknownColor = errors.New("unknown color")

// Parse resolves a color literal to a [Color].
func Parse(input string) (Color, error) {
	if strings.HasPrefix(input, "#") {
		hex, err := colorful.Hex(input)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, input)
		}

		r, g, b := hex.RGB255()

		return RGB(r, g, b), nil
	}

	if c, ok := ansiNames[input]; ok {
		return c, nil
	}

	if c, ok := cssNames[input]; ok {
		return c, nil
	}

	if c, ok := xtermNames[input]; ok {
		return c, nil
	}

	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, input)
}

var ansiNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright black":   BrightBlack,
	"bright red":     BrightRed,
	"bright green":   BrightGreen,
	"bright yellow":  BrightYellow,
	"bright blue":    BrightBlue,
	"bright magenta": BrightMagenta,
	"bright cyan":    BrightCyan,
	"bright white":   BrightWhite,
}

// The 16 user-configurable slots of the Xterm 256-color palette.
var xtermNames = map[string]Color{
	"user black":          Xterm(0),
	"user red":            Xterm(1),
	"user green":          Xterm(2),
	"user yellow":         Xterm(3),
	"user blue":           Xterm(4),
	"user magenta":        Xterm(5),
	"user cyan":           Xterm(6),
	"user white":          Xterm(7),
	"user bright black":   Xterm(8),
	"user bright red":     Xterm(9),
	"user bright green":   Xterm(10),
	"user bright yellow":  Xterm(11),
	"user bright blue":    Xterm(12),
	"user bright magenta": Xterm(13),
	"user bright cyan":    Xterm(14),
	"user bright white":   Xterm(15),
}

func rgb24(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)) //nolint:gosec // 24-bit literal.
}

// CSS extended color keywords, written the way they read: multi-word names
// are space-separated. Single-word names that collide with the ANSI palette
// ("red", "blue", ...) resolve to the ANSI color instead, since the ANSI
// table is consulted first.
var cssNames = map[string]Color{
	"alice blue":              rgb24(0xF0F8FF),
	"antique white":           rgb24(0xFAEBD7),
	"aqua":                    rgb24(0x00FFFF),
	"aquamarine":              rgb24(0x7FFFD4),
	"azure":                   rgb24(0xF0FFFF),
	"beige":                   rgb24(0xF5F5DC),
	"bisque":                  rgb24(0xFFE4C4),
	"black":                   rgb24(0x000000),
	"blanched almond":         rgb24(0xFFEBCD),
	"blue":                    rgb24(0x0000FF),
	"blue violet":             rgb24(0x8A2BE2),
	"brown":                   rgb24(0xA52A2A),
	"burly wood":              rgb24(0xDEB887),
	"cadet blue":              rgb24(0x5F9EA0),
	"chartreuse":              rgb24(0x7FFF00),
	"chocolate":               rgb24(0xD2691E),
	"coral":                   rgb24(0xFF7F50),
	"cornflower blue":         rgb24(0x6495ED),
	"cornsilk":                rgb24(0xFFF8DC),
	"crimson":                 rgb24(0xDC143C),
	"dark blue":               rgb24(0x00008B),
	"dark cyan":               rgb24(0x008B8B),
	"dark golden rod":         rgb24(0xB8860B),
	"dark gray":               rgb24(0xA9A9A9),
	"dark grey":               rgb24(0xA9A9A9),
	"dark green":              rgb24(0x006400),
	"dark khaki":              rgb24(0xBDB76B),
	"dark magenta":            rgb24(0x8B008B),
	"dark olive green":        rgb24(0x556B2F),
	"dark orange":             rgb24(0xFF8C00),
	"dark orchid":             rgb24(0x9932CC),
	"dark red":                rgb24(0x8B0000),
	"dark salmon":             rgb24(0xE9967A),
	"dark sea green":          rgb24(0x8FBC8F),
	"dark slate blue":         rgb24(0x483D8B),
	"dark slate gray":         rgb24(0x2F4F4F),
	"dark slate grey":         rgb24(0x2F4F4F),
	"dark turquoise":          rgb24(0x00CED1),
	"dark violet":             rgb24(0x9400D3),
	"deep pink":               rgb24(0xFF1493),
	"deep sky blue":           rgb24(0x00BFFF),
	"dim gray":                rgb24(0x696969),
	"dim grey":                rgb24(0x696969),
	"dodger blue":             rgb24(0x1E90FF),
	"fire brick":              rgb24(0xB22222),
	"floral white":            rgb24(0xFFFAF0),
	"forest green":            rgb24(0x228B22),
	"fuchsia":                 rgb24(0xFF00FF),
	"gainsboro":               rgb24(0xDCDCDC),
	"ghost white":             rgb24(0xF8F8FF),
	"gold":                    rgb24(0xFFD700),
	"golden rod":              rgb24(0xDAA520),
	"gray":                    rgb24(0x808080),
	"grey":                    rgb24(0x808080),
	"green":                   rgb24(0x008000),
	"green yellow":            rgb24(0xADFF2F),
	"honey dew":               rgb24(0xF0FFF0),
	"hot pink":                rgb24(0xFF69B4),
	"indian red":              rgb24(0xCD5C5C),
	"indigo":                  rgb24(0x4B0082),
	"ivory":                   rgb24(0xFFFFF0),
	"khaki":                   rgb24(0xF0E68C),
	"lavender":                rgb24(0xE6E6FA),
	"lavender blush":          rgb24(0xFFF0F5),
	"lawn green":              rgb24(0x7CFC00),
	"lemon chiffon":           rgb24(0xFFFACD),
	"light blue":              rgb24(0xADD8E6),
	"light coral":             rgb24(0xF08080),
	"light cyan":              rgb24(0xE0FFFF),
	"light golden rod yellow": rgb24(0xFAFAD2),
	"light gray":              rgb24(0xD3D3D3),
	"light grey":              rgb24(0xD3D3D3),
	"light green":             rgb24(0x90EE90),
	"light pink":              rgb24(0xFFB6C1),
	"light salmon":            rgb24(0xFFA07A),
	"light sea green":         rgb24(0x20B2AA),
	"light sky blue":          rgb24(0x87CEFA),
	"light slate gray":        rgb24(0x778899),
	"light slate grey":        rgb24(0x778899),
	"light steel blue":        rgb24(0xB0C4DE),
	"light yellow":            rgb24(0xFFFFE0),
	"lime":                    rgb24(0x00FF00),
	"lime green":              rgb24(0x32CD32),
	"linen":                   rgb24(0xFAF0E6),
	"magenta":                 rgb24(0xFF00FF),
	"maroon":                  rgb24(0x800000),
	"medium aqua marine":      rgb24(0x66CDAA),
	"medium blue":             rgb24(0x0000CD),
	"medium orchid":           rgb24(0xBA55D3),
	"medium purple":           rgb24(0x9370DB),
	"medium sea green":        rgb24(0x3CB371),
	"medium slate blue":       rgb24(0x7B68EE),
	"medium spring green":     rgb24(0x00FA9A),
	"medium turquoise":        rgb24(0x48D1CC),
	"medium violet red":       rgb24(0xC71585),
	"midnight blue":           rgb24(0x191970),
	"mint cream":              rgb24(0xF5FFFA),
	"misty rose":              rgb24(0xFFE4E1),
	"moccasin":                rgb24(0xFFE4B5),
	"navajo white":            rgb24(0xFFDEAD),
	"navy":                    rgb24(0x000080),
	"old lace":                rgb24(0xFDF5E6),
	"olive":                   rgb24(0x808000),
	"olive drab":              rgb24(0x6B8E23),
	"orange":                  rgb24(0xFFA500),
	"orange red":              rgb24(0xFF4500),
	"orchid":                  rgb24(0xDA70D6),
	"pale golden rod":         rgb24(0xEEE8AA),
	"pale green":              rgb24(0x98FB98),
	"pale turquoise":          rgb24(0xAFEEEE),
	"pale violet red":         rgb24(0xDB7093),
	"papaya whip":             rgb24(0xFFEFD5),
	"peach puff":              rgb24(0xFFDAB9),
	"peru":                    rgb24(0xCD853F),
	"pink":                    rgb24(0xFFC0CB),
	"plum":                    rgb24(0xDDA0DD),
	"powder blue":             rgb24(0xB0E0E6),
	"purple":                  rgb24(0x800080),
	"rebecca purple":          rgb24(0x663399),
	"red":                     rgb24(0xFF0000),
	"rosy brown":              rgb24(0xBC8F8F),
	"royal blue":              rgb24(0x4169E1),
	"saddle brown":            rgb24(0x8B4513),
	"salmon":                  rgb24(0xFA8072),
	"sandy brown":             rgb24(0xF4A460),
	"sea green":               rgb24(0x2E8B57),
	"sea shell":               rgb24(0xFFF5EE),
	"sienna":                  rgb24(0xA0522D),
	"silver":                  rgb24(0xC0C0C0),
	"sky blue":                rgb24(0x87CEEB),
	"slate blue":              rgb24(0x6A5ACD),
	"slate gray":              rgb24(0x708090),
	"slate grey":              rgb24(0x708090),
	"snow":                    rgb24(0xFFFAFA),
	"spring green":            rgb24(0x00FF7F),
	"steel blue":              rgb24(0x4682B4),
	"tan":                     rgb24(0xD2B48C),
	"teal":                    rgb24(0x008080),
	"thistle":                 rgb24(0xD8BFD8),
	"tomato":                  rgb24(0xFF6347),
	"turquoise":               rgb24(0x40E0D0),
	"violet":                  rgb24(0xEE82EE),
	"wheat":                   rgb24(0xF5DEB3),
	"white":                   rgb24(0xFFFFFF),
	"white smoke":             rgb24(0xF5F5F5),
	"yellow":                  rgb24(0xFFFF00),
	"yellow green":            rgb24(0x9ACD32),
}

package colors

import "strconv"

// Reset is the SGR sequence that clears all active attributes.
const Reset = "\x1b[0m"

type colorKind uint8

const (
	kindNone colorKind = iota
	kindANSI
	kindXterm
	kindRGB
)

// Color is a terminal color in one of three encodings: one of the 16 basic
// ANSI colors, an Xterm 256-palette index, or a 24-bit RGB triple.
//
// The zero value is "no color".
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// ANSI returns one of the 16 basic ANSI colors. Indices 0-7 are the normal
// colors, 8-15 the bright variants.
func ANSI(n uint8) Color {
	return Color{kind: kindANSI, index: n & 0x0f}
}

// Xterm returns a color from the 256-color Xterm palette.
func Xterm(n uint8) Color {
	return Color{kind: kindXterm, index: n}
}

// RGB returns a 24-bit truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// The basic ANSI palette.
var (
	Black         = ANSI(0)
	Red           = ANSI(1)
	Green         = ANSI(2)
	Yellow        = ANSI(3)
	Blue          = ANSI(4)
	Magenta       = ANSI(5)
	Cyan          = ANSI(6)
	White         = ANSI(7)
	BrightBlack   = ANSI(8)
	BrightRed     = ANSI(9)
	BrightGreen   = ANSI(10)
	BrightYellow  = ANSI(11)
	BrightBlue    = ANSI(12)
	BrightMagenta = ANSI(13)
	BrightCyan    = ANSI(14)
	BrightWhite   = ANSI(15)
)

// IsZero reports whether c is the "no color" zero value.
func (c Color) IsZero() bool {
	return c.kind == kindNone
}

// appendSGR appends the SGR parameters selecting c as the foreground
// (bg false) or background (bg true) color.
func (c Color) appendSGR(params []string, bg bool) []string {
	switch c.kind {
	case kindANSI:
		base := 30
		if c.index >= 8 {
			base = 82 // 90 - 8
		}
		if bg {
			base += 10
		}

		return append(params, strconv.Itoa(base+int(c.index)))

	case kindXterm:
		lead := "38"
		if bg {
			lead = "48"
		}

		return append(params, lead, "5", strconv.Itoa(int(c.index)))

	case kindRGB:
		lead := "38"
		if bg {
			lead = "48"
		}

		return append(params,
			lead, "2",
			strconv.Itoa(int(c.r)),
			strconv.Itoa(int(c.g)),
			strconv.Itoa(int(c.b)))
	}

	return params
}

// Style is a set of terminal text attributes: optional foreground and
// background colors plus the bold and dimmed flags. Styles are immutable;
// the builder methods (Foreground, Background, Bold, Dimmed) return derived
// copies. The SGR escape sequence is
// compiled once per derivation, so rendering a style is a string write.
//
// The zero value is the unstyled Style.
type Style struct {
	seq    string
	fg     Color
	bg     Color
	bold   bool
	dimmed bool
}

// NewStyle returns the empty Style.
func NewStyle() Style {
	return Style{}
}

// Foreground returns s with the foreground color set to c.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	s.seq = s.compile()

	return s
}

// Background returns s with the background color set to c.
func (s Style) Background(c Color) Style {
	s.bg = c
	s.seq = s.compile()

	return s
}

// Bold returns s with the bold attribute set.
func (s Style) Bold() Style {
	s.bold = true
	s.seq = s.compile()

	return s
}

// Dimmed returns s with the faint attribute set.
func (s Style) Dimmed() Style {
	s.dimmed = true
	s.seq = s.compile()

	return s
}

// Empty reports whether s carries no attributes at all.
func (s Style) Empty() bool {
	return s.seq == ""
}

// Begin returns the SGR sequence that enables the style, or "" for the empty
// style. Writers pair it with [Reset].
func (s Style) Begin() string {
	return s.seq
}

// Paint wraps text in the style's SGR sequence and a reset. The empty style
// returns text unchanged.
func (s Style) Paint(text string) string {
	if s.seq == "" {
		return text
	}

	return s.seq + text + Reset
}

func (s Style) compile() string {
	params := make([]string, 0, 8)

	if s.bold {
		params = append(params, "1")
	}

	if s.dimmed {
		params = append(params, "2")
	}

	params = s.fg.appendSGR(params, false)
	params = s.bg.appendSGR(params, true)

	if len(params) == 0 {
		return ""
	}

	seq := "\x1b["
	for i, p := range params {
		if i > 0 {
			seq += ";"
		}

		seq += p
	}

	return seq + "m"
}

package njson

import (
	"io"
	"strings"

	"go.jacobcolvin.com/jlv/colors"
)

// MarkupStyles colors the token classes of rendered JSON: object keys,
// unquoted values, quoted strings, and structural punctuation.
type MarkupStyles struct {
	Key    colors.Style
	Value  colors.Style
	Str    colors.Style
	Syntax colors.Style
}

// DefaultMarkupStyles returns the stock palette: blue keys, bright white
// values, green strings, white punctuation.
func DefaultMarkupStyles() MarkupStyles {
	return MarkupStyles{
		Key:    colors.NewStyle().Foreground(colors.Blue),
		Value:  colors.NewStyle().Foreground(colors.BrightWhite),
		Str:    colors.NewStyle().Foreground(colors.Green),
		Syntax: colors.NewStyle().Foreground(colors.White),
	}
}

// WriteCompact renders the node as single-line JSON with no whitespace.
// Null members and elements are skipped entirely. A nil st renders plain
// text.
func (n *Node) WriteCompact(w io.Writer, st *MarkupStyles) error {
	switch n.kind {
	case KindObject:
		if err := writeSyntax(w, "{", st); err != nil {
			return err
		}

		first := true

		for i := range n.pairs {
			m := &n.pairs[i]
			if m.Value.IsNull() {
				continue
			}

			if !first {
				if err := writeSyntax(w, ",", st); err != nil {
					return err
				}
			}

			first = false

			if err := writeKey(w, m.Key, st); err != nil {
				return err
			}

			if err := writeSyntax(w, ":", st); err != nil {
				return err
			}

			if err := m.Value.WriteCompact(w, st); err != nil {
				return err
			}
		}

		return writeSyntax(w, "}", st)

	case KindArray:
		if err := writeSyntax(w, "[", st); err != nil {
			return err
		}

		first := true

		for i := range n.elems {
			e := &n.elems[i]
			if e.IsNull() {
				continue
			}

			if !first {
				if err := writeSyntax(w, ",", st); err != nil {
					return err
				}
			}

			first = false

			if err := e.WriteCompact(w, st); err != nil {
				return err
			}
		}

		return writeSyntax(w, "]", st)

	case KindString:
		return writeStr(w, n.text, st)

	case KindValue:
		return writeValue(w, n.text, st)
	}

	return writeValue(w, "null", st)
}

// WritePretty renders the node as multi-line JSON, two spaces of indentation
// per nesting level on top of the given base indent. Null members and
// elements are skipped entirely. A nil st renders plain text.
func (n *Node) WritePretty(w io.Writer, indent int, st *MarkupStyles) error {
	switch n.kind {
	case KindObject:
		wrote := false

		for i := range n.pairs {
			m := &n.pairs[i]
			if m.Value.IsNull() {
				continue
			}

			if !wrote {
				if err := writeSyntax(w, "{", st); err != nil {
					return err
				}
			} else if err := writeSyntax(w, ",", st); err != nil {
				return err
			}

			wrote = true

			if err := writeNewlineIndent(w, indent+2); err != nil {
				return err
			}

			if err := writeKey(w, m.Key, st); err != nil {
				return err
			}

			if err := writeSyntax(w, ":", st); err != nil {
				return err
			}

			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}

			if err := m.Value.WritePretty(w, indent+2, st); err != nil {
				return err
			}
		}

		if !wrote {
			return writeSyntax(w, "{}", st)
		}

		if err := writeNewlineIndent(w, indent); err != nil {
			return err
		}

		return writeSyntax(w, "}", st)

	case KindArray:
		wrote := false

		for i := range n.elems {
			e := &n.elems[i]
			if e.IsNull() {
				continue
			}

			if !wrote {
				if err := writeSyntax(w, "[", st); err != nil {
					return err
				}
			} else if err := writeSyntax(w, ",", st); err != nil {
				return err
			}

			wrote = true

			if err := writeNewlineIndent(w, indent+2); err != nil {
				return err
			}

			if err := e.WritePretty(w, indent+2, st); err != nil {
				return err
			}
		}

		if !wrote {
			return writeSyntax(w, "[]", st)
		}

		if err := writeNewlineIndent(w, indent); err != nil {
			return err
		}

		return writeSyntax(w, "]", st)

	case KindString:
		return writeStr(w, n.text, st)

	case KindValue:
		return writeValue(w, n.text, st)
	}

	return writeValue(w, "null", st)
}

const indentSpaces = "                                                                "

func writeNewlineIndent(w io.Writer, indent int) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for indent > 0 {
		chunk := min(indent, len(indentSpaces))

		if _, err := io.WriteString(w, indentSpaces[:chunk]); err != nil {
			return err
		}

		indent -= chunk
	}

	return nil
}

func writeStyled(w io.Writer, text string, style colors.Style) error {
	if style.Empty() {
		_, err := io.WriteString(w, text)

		return err
	}

	if _, err := io.WriteString(w, style.Begin()); err != nil {
		return err
	}

	if _, err := io.WriteString(w, text); err != nil {
		return err
	}

	_, err := io.WriteString(w, colors.Reset)

	return err
}

func writeKey(w io.Writer, key string, st *MarkupStyles) error {
	if st == nil {
		_, err := io.WriteString(w, `"`+key+`"`)

		return err
	}

	return writeStyled(w, `"`+key+`"`, st.Key)
}

func writeStr(w io.Writer, s string, st *MarkupStyles) error {
	if st == nil {
		_, err := io.WriteString(w, `"`+s+`"`)

		return err
	}

	return writeStyled(w, `"`+s+`"`, st.Str)
}

func writeValue(w io.Writer, v string, st *MarkupStyles) error {
	if st == nil {
		_, err := io.WriteString(w, v)

		return err
	}

	return writeStyled(w, v, st.Value)
}

func writeSyntax(w io.Writer, s string, st *MarkupStyles) error {
	if st == nil {
		_, err := io.WriteString(w, s)

		return err
	}

	return writeStyled(w, s, st.Syntax)
}

// CompactString renders the node with [Node.WriteCompact] into a string,
// unstyled. It exists for tests and diagnostics.
func (n *Node) CompactString() string {
	var b strings.Builder

	_ = n.WriteCompact(&b, nil)

	return b.String()
}

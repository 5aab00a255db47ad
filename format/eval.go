package format

import (
	"io"
	"strings"

	"go.jacobcolvin.com/jlv/colors"
	"go.jacobcolvin.com/jlv/njson"
)

// renderState is per-render bookkeeping: the paths already resolved by
// winning field alternatives (consumed by .. and its exclusion filter), and
// enough trailing context to decide whether an indented argument sits at the
// start of a line.
type renderState struct {
	used        [][]njson.Step
	wroteAny    bool
	lastNewline bool
}

// Render evaluates the template against doc and writes the result to w.
// Pieces run strictly in order; conditional blocks render at most one
// branch. Render may be called any number of times; each call starts with a
// fresh used-fields set.
func (f *Formatter) Render(w io.Writer, doc *njson.Node) error {
	st := renderState{}

	i := 0
	for i < len(f.pieces) {
		var err error

		i, err = f.writePiece(w, i, doc, false, &st)
		if err != nil {
			return err
		}
	}

	return nil
}

// writePiece renders the piece at index i and returns the index of the next
// piece to consider. Conditional starts consume their whole block up to the
// matching CondEnd, recursing for nested blocks. When skip is set the piece
// stream is walked without emitting, which keeps block bracketing aligned.
func (f *Formatter) writePiece(w io.Writer, i int, doc *njson.Node, skip bool, st *renderState) (int, error) {
	switch p := &f.pieces[i]; p.kind {
	case pieceLiteral:
		if !skip {
			if _, err := io.WriteString(w, p.lit); err != nil {
				return 0, err
			}

			st.wroteAny = true
			st.lastNewline = false
		}

	case pieceEscaped:
		if !skip {
			if _, err := w.Write([]byte{p.esc}); err != nil {
				return 0, err
			}

			st.wroteAny = true
			st.lastNewline = p.esc == '\n' || p.esc == '\r'
		}

	case pieceArg:
		if !skip {
			if err := f.writeArg(w, &f.args[p.arg], doc, st); err != nil {
				return 0, err
			}
		}

	case pieceCondStart:
		matched := !skip && f.testCond(p.cond, p.arg, doc, st)
		branchTaken := matched
		shouldRun := matched

		i++

		for i < len(f.pieces) {
			switch pc := &f.pieces[i]; pc.kind {
			case pieceElseCond:
				if !skip && !branchTaken {
					shouldRun = f.testCond(pc.cond, pc.arg, doc, st)
					branchTaken = shouldRun
				} else {
					shouldRun = false
				}

				i++

				continue

			case pieceElse:
				if !skip && !branchTaken {
					shouldRun = true
					branchTaken = true
				} else {
					shouldRun = false
				}

				i++

				continue

			case pieceCondEnd:
				return i + 1, nil
			}

			var err error

			i, err = f.writePiece(w, i, doc, !shouldRun, st)
			if err != nil {
				return 0, err
			}
		}

		// Unterminated block: tolerate and stop at end of stream.
		return i, nil

	case pieceElseCond, pieceElse, pieceCondEnd:
		// Structural markers; consumed by the CondStart that owns them.
	}

	return i + 1, nil
}

// testCond evaluates a conditional head against the document. Config
// conditions were resolved at compile time. Field conditions resolve the
// argument's alternatives in order and test the first non-null hit; a
// condition whose every alternative is null is false.
func (f *Formatter) testCond(c cond, argIdx int, doc *njson.Node, st *renderState) bool {
	if c.kind == condConfig {
		return c.config
	}

	a := &f.args[argIdx]

	for i := range a.fields {
		switch fld := &a.fields[i]; fld.kind {
		case fieldWhole:
			return testValue(c.kind, doc)

		case fieldRest:
			// The rest view is rooted at the record itself, so a key-presence
			// check always holds.
			if c.kind == condKey {
				return true
			}

			return !doc.IsNull() && !doc.EmptyExcluding(st.used)

		case fieldNames:
			val := doc.Lookup(fld.path)
			if !val.IsNull() {
				return testValue(c.kind, val)
			}
		}
	}

	return false
}

// Raw tokens that count as false under {#if ...}.
var falsyValues = map[string]struct{}{
	"false":     {},
	"0":         {},
	"-0":        {},
	"0n":        {},
	"undefined": {},
	"NaN":       {},
}

func testValue(kind condKind, val *njson.Node) bool {
	if val.IsNull() {
		return false
	}

	if kind == condKey {
		return true
	}

	if s, ok := val.Value(); ok {
		_, falsy := falsyValues[s]

		return !falsy
	}

	return !val.IsEmpty()
}

// writeArg resolves the argument's field alternatives against doc and emits
// the first non-null result. Winning concrete paths are recorded for later
// .. fields.
func (f *Formatter) writeArg(w io.Writer, a *arg, doc *njson.Node, st *renderState) error {
	for i := range a.fields {
		switch fld := &a.fields[i]; fld.kind {
		case fieldWhole:
			return emitValue(w, a, doc, false, st)

		case fieldRest:
			return emitValue(w, a, doc, true, st)

		case fieldNames:
			val := doc.Lookup(fld.path)
			if !val.IsNull() {
				st.used = append(st.used, fld.path)

				return emitValue(w, a, val, false, st)
			}
		}
	}

	return nil
}

// emitValue writes one resolved value according to the argument's format.
// asRest marks the value as the record-minus-used-fields view, rendered
// through the exclusion filter.
func emitValue(w io.Writer, a *arg, val *njson.Node, asRest bool, st *renderState) error {
	if val.IsNull() {
		return nil
	}

	fm := &a.format

	if fm.indent > 0 && (!st.wroteAny || st.lastNewline) {
		if _, err := io.WriteString(w, strings.Repeat(" ", fm.indent)); err != nil {
			return err
		}
	}

	var err error

	switch {
	case val.Kind() == njson.KindString:
		s, _ := val.Str()
		err = emitString(w, fm, s)

	case val.Kind() == njson.KindValue:
		s, _ := val.Value()
		err = emitStyled(w, fm.styled, fm.style, s)

	default:
		err = emitContainer(w, fm, val, asRest, st)
	}

	if err != nil {
		return err
	}

	st.wroteAny = true
	st.lastNewline = false

	return nil
}

func emitString(w io.Writer, fm *argFormat, s string) error {
	style := fm.style

	pad := s == "INFO" || s == "info" || s == "WARN" || s == "warn"

	if fm.isLevel {
		if override, known := levelStyle(fm.style, s); known {
			style = override
		}
	}

	// Four-letter severities get a leading space so the level column lines
	// up against the five-letter ones, colored or not.
	if pad {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}

	return emitStyled(w, fm.styled, style, s)
}

// levelStyle maps a severity word to its display color: dim cyan for trace,
// green for debug, cyan for info, yellow for warn, red for error.
func levelStyle(base colors.Style, level string) (colors.Style, bool) {
	switch level {
	case "TRACE", "trace":
		return base.Foreground(colors.Cyan).Dimmed(), true
	case "DEBUG", "debug":
		return base.Foreground(colors.Green), true
	case "INFO", "info":
		return base.Foreground(colors.Cyan), true
	case "WARN", "warn":
		return base.Foreground(colors.Yellow), true
	case "ERROR", "error":
		return base.Foreground(colors.Red), true
	}

	return base, false
}

func emitStyled(w io.Writer, styled bool, style colors.Style, s string) error {
	if !styled || style.Empty() {
		_, err := io.WriteString(w, s)

		return err
	}

	if _, err := io.WriteString(w, style.Begin()); err != nil {
		return err
	}

	if _, err := io.WriteString(w, s); err != nil {
		return err
	}

	_, err := io.WriteString(w, colors.Reset)

	return err
}

func emitContainer(w io.Writer, fm *argFormat, val *njson.Node, asRest bool, st *renderState) error {
	var mk *njson.MarkupStyles
	if fm.styled {
		mk = &fm.markup
	}

	var exclude [][]njson.Step
	if asRest {
		exclude = st.used
	}

	if fm.compact {
		if asRest {
			return val.WriteCompactExcluding(w, mk, exclude)
		}

		return val.WriteCompact(w, mk)
	}

	if asRest {
		return val.WritePrettyExcluding(w, fm.indent, mk, exclude)
	}

	return val.WritePretty(w, fm.indent, mk)
}

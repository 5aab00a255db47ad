package format

import (
	"fmt"
	"strconv"
	"strings"

	"go.jacobcolvin.com/jlv/colors"
	"go.jacobcolvin.com/jlv/njson"
)

// Compile parses a template string into a [Formatter]. The input must
// already be variable-expanded (see [Expand]). The options are captured into
// the compiled form: NoColor strips styles, Compact sets the default for
// container rendering, and both are the values tested by {#config ...} tags.
func Compile(input string, opts Options) (*Formatter, error) {
	f := &Formatter{}

	i := 0

	for i < len(input) {
		switch input[i] {
		case '\\':
			if i+1 >= len(input) {
				return nil, fmt.Errorf("%w: dangling backslash", ErrUnknownCharEscape)
			}

			esc, err := escapeChar(input[i+1])
			if err != nil {
				return nil, err
			}

			f.pieces = append(f.pieces, piece{kind: pieceEscaped, esc: esc})

			i += 2

		case '{':
			end := strings.IndexByte(input[i:], '}')
			if end < 0 {
				return nil, ErrClosingBrace
			}

			err := f.compileTag(input[i+1:i+end], opts)
			if err != nil {
				return nil, err
			}

			i += end + 1

		default:
			j := i + 1
			for j < len(input) && input[j] != '\\' && input[j] != '{' {
				j++
			}

			f.pieces = append(f.pieces, piece{kind: pieceLiteral, lit: input[i:j]})

			i = j
		}
	}

	return f, nil
}

func escapeChar(c byte) (byte, error) {
	switch c {
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '\'', '"', '{', '}', '\\':
		return c, nil
	}

	return 0, fmt.Errorf("%w: \\%c", ErrUnknownCharEscape, c)
}

func (f *Formatter) compileTag(content string, opts Options) error {
	switch {
	case strings.HasPrefix(content, "#"):
		return f.compileCond(content[1:], opts)

	case strings.HasPrefix(content, ":"):
		return f.compileElse(content[1:], opts)

	case strings.HasPrefix(content, "/"):
		f.pieces = append(f.pieces, piece{kind: pieceCondEnd})

		return nil

	default:
		a, err := parseArg(content, opts)
		if err != nil {
			return err
		}

		f.args = append(f.args, a)
		f.pieces = append(f.pieces, piece{kind: pieceArg, arg: len(f.args) - 1})

		return nil
	}
}

func (f *Formatter) compileCond(content string, opts Options) error {
	switch {
	case strings.HasPrefix(content, "if "):
		return f.pushCond(pieceCondStart, cond{kind: condIf}, content[len("if "):], opts)

	case strings.HasPrefix(content, "key "):
		return f.pushCond(pieceCondStart, cond{kind: condKey}, content[len("key "):], opts)

	case strings.HasPrefix(content, "config "):
		var value bool

		switch strings.TrimSpace(content[len("config "):]) {
		case "compact":
			value = opts.Compact
		case "no_color":
			value = opts.NoColor
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedConfig, content)
		}

		f.pieces = append(f.pieces, piece{
			kind: pieceCondStart,
			cond: cond{kind: condConfig, config: value},
		})

		return nil

	default:
		return fmt.Errorf("%w: #%s", ErrUnsupportedConditional, content)
	}
}

func (f *Formatter) compileElse(content string, opts Options) error {
	switch {
	case content == "else":
		f.pieces = append(f.pieces, piece{kind: pieceElse})

		return nil

	case strings.HasPrefix(content, "else if "):
		return f.pushCond(pieceElseCond, cond{kind: condIf}, content[len("else if "):], opts)

	case strings.HasPrefix(content, "else key "):
		return f.pushCond(pieceElseCond, cond{kind: condKey}, content[len("else key "):], opts)

	default:
		return fmt.Errorf("%w: :%s", ErrUnsupportedConditional, content)
	}
}

func (f *Formatter) pushCond(kind pieceKind, c cond, fieldExpr string, opts Options) error {
	a, err := parseArg(fieldExpr, opts)
	if err != nil {
		return err
	}

	f.args = append(f.args, a)
	f.pieces = append(f.pieces, piece{kind: kind, cond: c, arg: len(f.args) - 1})

	return nil
}

// parseArg parses "<fields>[:<style-spec>]": a |-separated alternation of
// field paths followed by an optional style specification.
func parseArg(content string, opts Options) (arg, error) {
	content = strings.TrimSpace(content)

	namePart, stylePart, hasStyle := strings.Cut(content, ":")

	var fmtSpec string
	if hasStyle {
		fmtSpec = stylePart
	}

	af, err := parseFormat(fmtSpec, hasStyle, opts)
	if err != nil {
		return arg{}, err
	}

	a := arg{format: af}

	if namePart == "" {
		a.fields = append(a.fields, field{kind: fieldNames, path: []njson.Step{njson.NameStep("")}})

		return a, nil
	}

	for _, name := range strings.Split(namePart, "|") {
		switch name {
		case "":
			continue

		case ".":
			a.fields = append(a.fields, field{kind: fieldWhole})

		case "..":
			a.fields = append(a.fields, field{kind: fieldRest})

		default:
			path, err := parsePath(name)
			if err != nil {
				return arg{}, err
			}

			a.fields = append(a.fields, field{kind: fieldNames, path: path})
		}
	}

	return a, nil
}

// parsePath parses a dotted field path. A segment may carry one bracketed
// index: "spans[1].name" -> Name(spans), Index(1), Name(name).
func parsePath(name string) ([]njson.Step, error) {
	var path []njson.Step

	for _, part := range strings.Split(name, ".") {
		head, idx, indexed := strings.Cut(part, "[")
		path = append(path, njson.NameStep(head))

		if !indexed {
			continue
		}

		digits, ok := strings.CutSuffix(idx, "]")
		if !ok {
			return nil, ErrIndexBracket
		}

		i, err := strconv.Atoi(digits)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrParseIndex, idx)
		}

		path = append(path, njson.IndexStep(i))
	}

	return path, nil
}

// parseFormat parses a comma-separated style specification. A bare term
// that is not a recognized flag is shorthand for fg=<term>.
func parseFormat(spec string, hasSpec bool, opts Options) (argFormat, error) {
	af := argFormat{
		styled:  !opts.NoColor,
		compact: opts.Compact,
		markup:  njson.DefaultMarkupStyles(),
	}

	if !hasSpec {
		return af, nil
	}

	for _, term := range strings.Split(spec, ",") {
		if term == "" {
			continue
		}

		name, value, assigned := strings.Cut(term, "=")
		if !assigned {
			switch term {
			case "level":
				af.isLevel = true

				continue

			case "compact":
				af.compact = true

				continue

			case "json":
				af.isJSON = true

				continue

			case "dimmed":
				af.style = af.style.Dimmed()

				continue

			case "bold":
				af.style = af.style.Bold()

				continue
			}

			name, value = "fg", term
		}

		switch name {
		case "fg":
			c, err := parseColor(value)
			if err != nil {
				return argFormat{}, err
			}

			af.style = af.style.Foreground(c)

		case "bg":
			c, err := parseColor(value)
			if err != nil {
				return argFormat{}, err
			}

			af.style = af.style.Background(c)

		case "indent":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return argFormat{}, fmt.Errorf("%w: %q", ErrParseIndent, value)
			}

			af.indent = n

		case "key":
			c, err := parseColor(value)
			if err != nil {
				return argFormat{}, err
			}

			af.markup.Key = af.markup.Key.Foreground(c)

		case "value":
			c, err := parseColor(value)
			if err != nil {
				return argFormat{}, err
			}

			af.markup.Value = af.markup.Value.Foreground(c)

		case "str":
			c, err := parseColor(value)
			if err != nil {
				return argFormat{}, err
			}

			af.markup.Str = af.markup.Str.Foreground(c)

		case "syntax":
			c, err := parseColor(value)
			if err != nil {
				return argFormat{}, err
			}

			af.markup.Syntax = af.markup.Syntax.Foreground(c)

		default:
			return argFormat{}, fmt.Errorf("%w: %q", ErrInvalidModifier, name)
		}
	}

	return af, nil
}

func parseColor(value string) (colors.Color, error) {
	c, err := colors.Parse(value)
	if err != nil {
		return colors.Color{}, fmt.Errorf("%w: %w", ErrParseColor, err)
	}

	return c, nil
}

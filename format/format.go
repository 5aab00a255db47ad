package format

import (
	"errors"

	"go.jacobcolvin.com/jlv/colors"
	"go.jacobcolvin.com/jlv/njson"
)

// Template compilation and expansion errors. Compile and Expand wrap these
// with the offending fragment.
var (
	// ErrParseColor indicates a color literal that the color table rejected.
	ErrParseColor = errors.New("invalid color in format string")
	// ErrParseIndent indicates a non-numeric or negative indent value.
	ErrParseIndent = errors.New("invalid indent value in format string")
	// ErrInvalidModifier indicates an unrecognized style assignment.
	ErrInvalidModifier = errors.New("invalid modifier in format string")
	// ErrUnknownCharEscape indicates a backslash escape outside the
	// recognized set.
	ErrUnknownCharEscape = errors.New("unknown character escape in format string")
	// ErrClosingBrace indicates a tag with no closing brace.
	ErrClosingBrace = errors.New("closing brace not found in format string")
	// ErrIndexBracket indicates an index with no closing bracket.
	ErrIndexBracket = errors.New("index closing bracket not found")
	// ErrParseIndex indicates a non-numeric array index.
	ErrParseIndex = errors.New("invalid index in format string")
	// ErrUnsupportedConditional indicates an unrecognized {#...} or {:...}
	// tag.
	ErrUnsupportedConditional = errors.New("unsupported conditional")
	// ErrUnsupportedConfig indicates a {#config ...} key that is not
	// "compact" or "no_color".
	ErrUnsupportedConfig = errors.New("unsupported config key")
	// ErrInvalidVariable indicates a missing variable reference or an
	// expansion that exceeded the recursion limit.
	ErrInvalidVariable = errors.New("invalid variable")
)

// Options carries the configuration captured at compile time. Compact
// selects single-line JSON for container-valued arguments, and is the value
// tested by {#config compact}. NoColor strips every style, and is the value
// tested by {#config no_color}.
type Options struct {
	NoColor bool
	Compact bool
}

// Formatter is a compiled template: a flat piece stream over a shared
// argument table. Compile once, then render any number of documents with
// [Formatter.Render].
type Formatter struct {
	pieces []piece
	args   []arg
}

type pieceKind uint8

const (
	pieceLiteral pieceKind = iota
	pieceEscaped
	pieceArg
	pieceCondStart
	pieceElseCond
	pieceElse
	pieceCondEnd
)

// piece is one element of the compiled stream. Conditionals are encoded as
// a well-bracketed marker sequence, not a tree: CondStart ... (ElseCond ...)*
// (Else ...)? CondEnd, with nesting handled by depth during evaluation.
type piece struct {
	lit  string
	arg  int
	kind pieceKind
	esc  byte
	cond cond
}

type condKind uint8

const (
	condIf condKind = iota
	condKey
	condConfig
)

type cond struct {
	kind   condKind
	config bool
}

type fieldKind uint8

const (
	fieldNames fieldKind = iota
	fieldWhole
	fieldRest
)

// field is one alternative of an argument: a concrete path, the whole
// record (.), or the record minus previously used paths (..).
type field struct {
	path []njson.Step
	kind fieldKind
}

type arg struct {
	fields []field
	format argFormat
}

// argFormat is an argument's rendering configuration. styled is false when
// colors are globally disabled; style and markup are only consulted when it
// is true. isJSON records the json modifier; container values render as
// JSON either way, so the flag is descriptive.
type argFormat struct {
	style   colors.Style
	markup  njson.MarkupStyles
	indent  int
	styled  bool
	compact bool
	isJSON  bool
	isLevel bool
}

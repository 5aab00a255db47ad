package njson

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed input line. Index is a byte offset into
// Input (the line with surrounding whitespace trimmed).
type ParseError struct {
	Message string
	Input   string
	Index   int
}

// Error renders a single-line description with a short snippet around the
// failure offset.
func (e *ParseError) Error() string {
	start := max(0, e.Index-15)
	end := min(len(e.Input), e.Index+10)

	return fmt.Sprintf("%s at index %d: '%s'", e.Message, e.Index, e.Input[start:end])
}

// Diagnostic renders a multi-line report: the message, a snippet of up to 20
// bytes on each side of the failure offset, and a caret pointing at the
// offending byte.
func (e *ParseError) Diagnostic() string {
	start := max(0, e.Index-20)
	end := min(len(e.Input), e.Index+20)

	var b strings.Builder

	fmt.Fprintf(&b, "%s at index %d:\n'%s'\n", e.Message, e.Index, e.Input[start:end])
	// One extra column for the opening quote.
	b.WriteString(strings.Repeat(" ", e.Index-start+1))
	b.WriteByte('^')

	return b.String()
}

// Parse re-parses the node in place from input. The first non-whitespace
// byte must open an object or array. On success every string and value slice
// in the tree borrows from input; the node is valid only until the next
// Parse call. On failure the node's contents are unspecified and the next
// Parse starts clean.
//
// Container storage from previous parses is reused positionally: slots whose
// new value is null keep their old allocation under a null-with-carrier
// variant, and shrinking containers retain their tails the same way.
func (n *Node) Parse(input string) error {
	input = strings.TrimSpace(input)

	if input != "" && input[0] != '{' && input[0] != '[' {
		return &ParseError{Message: "JSON must be an object or array", Input: input, Index: 0}
	}

	p := &parser{input: input}

	return n.parseValue(p)
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}

	return p.input[p.pos], true
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorAt(msg string, index int) *ParseError {
	return &ParseError{Message: msg, Input: p.input, Index: index}
}

func (n *Node) parseValue(p *parser) error {
	c, ok := p.peek()
	if !ok {
		return p.errorAt("Unexpected end of input", len(p.input))
	}

	switch c {
	case '{':
		// Reuse member storage regardless of what the slot held before;
		// every retained entry is either overwritten or demoted to null.
		n.kind = KindObject

		return n.parseObject(p)

	case '[':
		n.kind = KindArray

		return n.parseArray(p)

	case '"':
		s, err := p.parseString()
		if err != nil {
			return err
		}

		n.kind = KindString
		n.text = s

		return nil

	case 'n':
		if err := p.parseNull(); err != nil {
			return err
		}

		n.demoteToNull()

		return nil

	case ']':
		return p.errorAt("Unexpected closing bracket", p.pos)

	case '}':
		return p.errorAt("Unexpected closing brace", p.pos)

	default:
		n.kind = KindValue
		n.text = p.parseRaw()

		return nil
	}
}

func (n *Node) parseObject(p *parser) error {
	p.pos++ // '{'

	p.skipWhitespace()

	if c, ok := p.peek(); ok && c == '}' {
		p.pos++

		// Keys absent from this input become null, storage retained.
		for i := range n.pairs {
			n.pairs[i].Value.demoteToNull()
		}

		return nil
	}

	count := 0

	for {
		if c, ok := p.peek(); !ok || c != '"' {
			return p.errorAt("Unexpected char in object", p.pos)
		}

		key, err := p.parseString()
		if err != nil {
			return err
		}

		p.skipWhitespace()

		if c, ok := p.peek(); !ok || c != ':' {
			return p.errorAt("Expected colon ':' after key in object", p.pos)
		}

		p.pos++ // ':'
		p.skipWhitespace()

		if count < len(n.pairs) {
			n.pairs[count].Key = key

			err = n.pairs[count].Value.parseValue(p)
		} else {
			n.pairs = append(n.pairs, Member{Key: key})

			err = n.pairs[count].Value.parseValue(p)
		}

		if err != nil {
			return err
		}

		count++

		p.skipWhitespace()

		c, ok := p.peek()
		switch {
		case ok && c == ',':
			p.pos++
			p.skipWhitespace()

		case ok && c == '}':
			p.pos++

			for i := count; i < len(n.pairs); i++ {
				n.pairs[i].Value.demoteToNull()
			}

			return nil

		default:
			return p.errorAt("Expected comma or closing brace '}' in object", p.pos)
		}
	}
}

func (n *Node) parseArray(p *parser) error {
	p.pos++ // '['

	p.skipWhitespace()

	if c, ok := p.peek(); ok && c == ']' {
		p.pos++

		for i := range n.elems {
			n.elems[i].demoteToNull()
		}

		return nil
	}

	count := 0

	for {
		var err error

		if count < len(n.elems) {
			err = n.elems[count].parseValue(p)
		} else {
			n.elems = append(n.elems, Node{})

			err = n.elems[count].parseValue(p)
		}

		if err != nil {
			return err
		}

		count++

		p.skipWhitespace()

		c, ok := p.peek()
		switch {
		case ok && c == ',':
			p.pos++
			p.skipWhitespace()

		case ok && c == ']':
			p.pos++

			for i := count; i < len(n.elems); i++ {
				n.elems[i].demoteToNull()
			}

			return nil

		default:
			return p.errorAt("Expected comma or closing bracket ']' in array", p.pos)
		}
	}
}

// parseString consumes a quoted string and returns the text between the
// quotes. A backslash escapes any single following byte; escapes are not
// decoded.
func (p *parser) parseString() (string, error) {
	start := p.pos
	p.pos++ // '"'

	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '"':
			s := p.input[start+1 : p.pos]
			p.pos++

			return s, nil

		case '\\':
			p.pos += 2

		default:
			p.pos++
		}
	}

	return "", p.errorAt("Closing quote not found for string started", start)
}

func (p *parser) parseNull() error {
	start := p.pos

	if strings.HasPrefix(p.input[p.pos:], "null") {
		p.pos += len("null")

		return nil
	}

	return p.errorAt("Invalid null value", start)
}

// parseRaw consumes an unquoted token: everything up to the next structural
// byte or end of input, with trailing whitespace dropped.
func (p *parser) parseRaw() string {
	start := p.pos

	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ',', ']', '}':
			return strings.TrimRight(p.input[start:p.pos], " \t\r\n")
		}

		p.pos++
	}

	return strings.TrimRight(p.input[start:], " \t\r\n")
}

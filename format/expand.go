package format

import (
	"fmt"
	"strings"
)

// maxExpandDepth bounds variable expansion so that accidentally cyclic
// definitions fail instead of hanging.
const maxExpandDepth = 32

// Expand rewrites every {&key} reference in input using the variables table,
// recursively, and returns the flattened template ready for [Compile].
//
// Variable references may appear as whole tags ({&log_fmt}), as styled tags
// ({&level:level}, where the referenced body is unwrapped and restyled), and
// as field alternatives ({&timestamp|&level}). Missing keys and expansions
// deeper than 32 levels return [ErrInvalidVariable].
func Expand(input string, vars *Variables) (string, error) {
	var b strings.Builder

	err := expandInput(&b, input, vars, 0)
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

func expandInput(b *strings.Builder, input string, vars *Variables, depth int) error {
	if depth > maxExpandDepth {
		return fmt.Errorf("%w: expansion exceeded %d levels (cyclic definition?)",
			ErrInvalidVariable, maxExpandDepth)
	}

	i := 0

	for i < len(input) {
		switch input[i] {
		case '\\':
			// Escapes pass through untouched; Compile interprets them.
			if i+1 >= len(input) {
				b.WriteByte('\\')
				i++

				continue
			}

			b.WriteString(input[i : i+2])

			i += 2

		case '{':
			end := strings.IndexByte(input[i:], '}')
			if end < 0 {
				return ErrClosingBrace
			}

			err := expandTag(b, input[i+1:i+end], vars, depth)
			if err != nil {
				return err
			}

			i += end + 1

		default:
			b.WriteByte(input[i])
			i++
		}
	}

	return nil
}

func expandTag(b *strings.Builder, content string, vars *Variables, depth int) error {
	switch {
	case strings.HasPrefix(content, "&") && !strings.Contains(content, "|"):
		return expandVariableTag(b, content[1:], vars, depth)

	case strings.HasPrefix(content, "#"):
		return expandCondTag(b, content[1:], vars, depth)

	case strings.HasPrefix(content, ":"):
		return expandElseTag(b, content[1:], vars, depth)

	case strings.HasPrefix(content, "/"):
		b.WriteString("{")
		b.WriteString(content)
		b.WriteString("}")

		return nil

	default:
		fieldPart, style, styled := strings.Cut(content, ":")

		b.WriteString("{")

		err := expandField(b, fieldPart, vars, depth)
		if err != nil {
			return err
		}

		if styled {
			b.WriteString(":")
			b.WriteString(style)
		}

		b.WriteString("}")

		return nil
	}
}

// expandVariableTag handles {&key} and {&key:style}. The styled form
// unwraps the referenced body's braces and re-emits it as a single tag with
// the trailing style.
func expandVariableTag(b *strings.Builder, ref string, vars *Variables, depth int) error {
	key, style, styled := strings.Cut(ref, ":")

	body, ok := vars.Get(key)
	if !ok {
		return fmt.Errorf("%w: %q is not defined", ErrInvalidVariable, key)
	}

	if !styled {
		return expandInput(b, body, vars, depth+1)
	}

	b.WriteString("{")

	err := expandField(b, unwrapTag(body), vars, depth+1)
	if err != nil {
		return err
	}

	b.WriteString(":")
	b.WriteString(style)
	b.WriteString("}")

	return nil
}

func expandCondTag(b *strings.Builder, content string, vars *Variables, depth int) error {
	var keyword, rest string

	switch {
	case strings.HasPrefix(content, "key "):
		keyword, rest = "key", content[len("key "):]
	case strings.HasPrefix(content, "if "):
		keyword, rest = "if", content[len("if "):]
	case strings.HasPrefix(content, "config "):
		keyword, rest = "config", content[len("config "):]
	default:
		return fmt.Errorf("%w: #%s", ErrUnsupportedConditional, content)
	}

	b.WriteString("{#")
	b.WriteString(keyword)
	b.WriteString(" ")

	err := expandField(b, rest, vars, depth)
	if err != nil {
		return err
	}

	b.WriteString("}")

	return nil
}

func expandElseTag(b *strings.Builder, content string, vars *Variables, depth int) error {
	var keyword, rest string

	switch {
	case content == "else":
		b.WriteString("{:else}")

		return nil

	case strings.HasPrefix(content, "else key "):
		keyword, rest = "else key", content[len("else key "):]
	case strings.HasPrefix(content, "else if "):
		keyword, rest = "else if", content[len("else if "):]
	default:
		return fmt.Errorf("%w: :%s", ErrUnsupportedConditional, content)
	}

	b.WriteString("{:")
	b.WriteString(keyword)
	b.WriteString(" ")

	err := expandField(b, rest, vars, depth)
	if err != nil {
		return err
	}

	b.WriteString("}")

	return nil
}

// expandField handles alternation lists: a|&b|c. Each &-prefixed
// alternative is replaced by its (unwrapped) body, recursively.
func expandField(b *strings.Builder, content string, vars *Variables, depth int) error {
	if depth > maxExpandDepth {
		return fmt.Errorf("%w: expansion exceeded %d levels (cyclic definition?)",
			ErrInvalidVariable, maxExpandDepth)
	}

	for i, alt := range strings.Split(content, "|") {
		if i > 0 {
			b.WriteString("|")
		}

		key, isRef := strings.CutPrefix(alt, "&")
		if !isRef {
			b.WriteString(alt)

			continue
		}

		body, ok := vars.Get(key)
		if !ok {
			return fmt.Errorf("%w: %q is not defined", ErrInvalidVariable, key)
		}

		err := expandField(b, unwrapTag(body), vars, depth+1)
		if err != nil {
			return err
		}
	}

	return nil
}

// unwrapTag strips the surrounding braces of a single-tag variable body so
// it can be spliced into a larger tag.
func unwrapTag(body string) string {
	return strings.TrimSuffix(strings.TrimPrefix(body, "{"), "}")
}

// Package stream drives the line loop: read a line, strip ANSI escapes,
// parse it into the reusable document, render the template, and write the
// result. One goroutine; input and output each go through a bufio buffer.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"go.jacobcolvin.com/jlv/colors"
	"go.jacobcolvin.com/jlv/format"
	"go.jacobcolvin.com/jlv/njson"
)

// Config adjusts driver behavior.
type Config struct {
	// Strict stops at the first unparseable line after reporting it,
	// instead of passing the line through.
	Strict bool
	// NoColor suppresses the red strict diagnostic and passes unparseable
	// lines through stripped of their original escapes.
	NoColor bool
	// Take stops after rendering this many records. Zero means unlimited.
	// Passed-through lines do not count.
	Take int
}

// Driver copies records from a reader to a writer through a compiled
// template. Each [Driver.Run] call owns a single reusable [njson.Node]; the
// document's borrowed slices are only ever alive between one parse and its
// render, so reuse is safe.
type Driver struct {
	formatter *format.Formatter
	cfg       Config
}

// New returns a Driver rendering through formatter.
func New(formatter *format.Formatter, cfg Config) *Driver {
	return &Driver{formatter: formatter, cfg: cfg}
}

var errorStyle = colors.NewStyle().Foreground(colors.Red)

// Run consumes r line by line until EOF and writes rendered records to w.
// Unparseable lines pass through verbatim, or in strict mode produce a
// diagnostic and stop the stream; neither case is an error here, by design
// the process exits zero for both. Run returns the first read or write
// failure otherwise.
func (d *Driver) Run(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var doc njson.Node

	rendered := 0

	for {
		line, readErr := br.ReadString('\n')

		if line != "" {
			done, err := d.processLine(bw, &doc, line, &rendered)
			if err != nil {
				return err
			}

			if done {
				break
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			return fmt.Errorf("reading input: %w", readErr)
		}
	}

	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// processLine handles one raw line (newline included, except possibly the
// last). It reports done when the stream should stop: the take limit was
// reached or a strict-mode parse failure was reported.
func (d *Driver) processLine(bw *bufio.Writer, doc *njson.Node, line string, rendered *int) (bool, error) {
	stripped := ansi.Strip(line)
	if strings.TrimSpace(stripped) == "" {
		return false, nil
	}

	parseErr := doc.Parse(stripped)
	if parseErr != nil {
		return d.reportParseError(bw, parseErr, line, stripped)
	}

	err := d.formatter.Render(bw, doc)
	if err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}

	err = bw.WriteByte('\n')
	if err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}

	*rendered++

	return d.cfg.Take > 0 && *rendered >= d.cfg.Take, nil
}

func (d *Driver) reportParseError(bw *bufio.Writer, parseErr error, line, stripped string) (bool, error) {
	if d.cfg.Strict {
		var perr *njson.ParseError

		diagnostic := parseErr.Error()
		if errors.As(parseErr, &perr) {
			diagnostic = perr.Diagnostic()
		}

		if !d.cfg.NoColor {
			diagnostic = errorStyle.Paint(diagnostic)
		}

		_, err := bw.WriteString(diagnostic + "\n")
		if err != nil {
			return false, fmt.Errorf("writing output: %w", err)
		}

		return true, nil
	}

	// Lenient: echo the line. With color on, the original escapes pass
	// through; with color off, the stripped copy does.
	out := line
	if d.cfg.NoColor {
		out = stripped
	}

	_, err := bw.WriteString(out)
	if err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}

	return false, nil
}

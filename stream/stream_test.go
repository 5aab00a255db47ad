package stream_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jlv/format"
	"go.jacobcolvin.com/jlv/stream"
)

// run pipes input through a driver built from tmpl and returns everything
// written to the output.
func run(t *testing.T, tmpl, input string, opts format.Options, cfg stream.Config) string {
	t.Helper()

	expanded, err := format.Expand(tmpl, format.DefaultVariables())
	require.NoError(t, err)

	f, err := format.Compile(expanded, opts)
	require.NoError(t, err)

	var out strings.Builder

	d := stream.New(f, cfg)
	require.NoError(t, d.Run(strings.NewReader(input), &out))

	return out.String()
}

func TestRunBasicLog(t *testing.T) {
	t.Parallel()

	got := run(t, `{&log_fmt}`,
		`{"timestamp":"2024-02-07T00:00:00Z","level":"INFO","message":"hi"}`+"\n",
		format.Options{NoColor: true},
		stream.Config{NoColor: true})

	assert.Equal(t, "2024-02-07T00:00:00Z  INFO hi\n", got)
}

func TestRunMultipleLines(t *testing.T) {
	t.Parallel()

	input := `{"severity":"WARN"}` + "\n" +
		`{"level":"ERROR"}` + "\n" +
		`{"other":1}` + "\n"

	got := run(t, `{level|severity}`, input,
		format.Options{NoColor: true},
		stream.Config{NoColor: true})

	assert.Equal(t, " WARN\nERROR\n\n", got)
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	got := run(t, `{message}`, `{"message":"hi"}`,
		format.Options{NoColor: true},
		stream.Config{NoColor: true})

	assert.Equal(t, "hi\n", got)
}

func TestRunSkipsBlankLines(t *testing.T) {
	t.Parallel()

	got := run(t, `{message}`, "\n   \n\t\n"+`{"message":"hi"}`+"\n\n",
		format.Options{NoColor: true},
		stream.Config{NoColor: true})

	assert.Equal(t, "hi\n", got)
}

func TestRunStripsANSIBeforeParsing(t *testing.T) {
	t.Parallel()

	got := run(t, `{message}`,
		"\x1b[31m"+`{"message":"hi"}`+"\x1b[0m\n",
		format.Options{NoColor: true},
		stream.Config{NoColor: true})

	assert.Equal(t, "hi\n", got)
}

func TestRunLenientPassThrough(t *testing.T) {
	t.Parallel()

	input := "plain text line\n" + `{"message":"hi"}` + "\n"

	got := run(t, `{message}`, input,
		format.Options{NoColor: true},
		stream.Config{NoColor: true})

	// The unparseable line is echoed verbatim, newline included.
	assert.Equal(t, "plain text line\nhi\n", got)
}

func TestRunLenientPassThroughKeepsEscapesWithColor(t *testing.T) {
	t.Parallel()

	line := "\x1b[31mred text\x1b[0m\n"

	withColor := run(t, `{message}`, line, format.Options{}, stream.Config{})
	assert.Equal(t, line, withColor)

	stripped := run(t, `{message}`, line,
		format.Options{NoColor: true}, stream.Config{NoColor: true})
	assert.Equal(t, "red text\n", stripped)
}

func TestRunStrict(t *testing.T) {
	t.Parallel()

	// The second line must not be consumed.
	input := "not json\n" + `{"message":"hi"}` + "\n"

	got := run(t, `{&log_fmt}`, input,
		format.Options{NoColor: true},
		stream.Config{Strict: true, NoColor: true})

	assert.Equal(t,
		"JSON must be an object or array at index 0:\n'not json'\n ^\n",
		got)
}

func TestRunStrictColorsDiagnostic(t *testing.T) {
	t.Parallel()

	got := run(t, `{message}`, "not json\n",
		format.Options{},
		stream.Config{Strict: true})

	assert.True(t, strings.HasPrefix(got, "\x1b[31m"))
	assert.True(t, strings.HasSuffix(got, "\x1b[0m\n"))
	assert.Contains(t, got, "JSON must be an object or array at index 0:")
}

func TestRunTake(t *testing.T) {
	t.Parallel()

	input := `{"message":"1"}` + "\n" +
		`{"message":"2"}` + "\n" +
		`{"message":"3"}` + "\n"

	got := run(t, `{message}`, input,
		format.Options{NoColor: true},
		stream.Config{NoColor: true, Take: 2})

	assert.Equal(t, "1\n2\n", got)
}

func TestRunTakeIgnoresPassThrough(t *testing.T) {
	t.Parallel()

	// Passed-through lines do not count toward the take limit.
	input := "noise\n" +
		`{"message":"1"}` + "\n" +
		"more noise\n" +
		`{"message":"2"}` + "\n" +
		`{"message":"3"}` + "\n"

	got := run(t, `{message}`, input,
		format.Options{NoColor: true},
		stream.Config{NoColor: true, Take: 2})

	assert.Equal(t, "noise\n1\nmore noise\n2\n", got)
}

func TestRunRestStateResetsPerLine(t *testing.T) {
	t.Parallel()

	// Each record resolves its own used-field set; the rest view must not
	// leak exclusions across lines.
	input := `{"message":"a","x":1}` + "\n" +
		`{"y":2}` + "\n"

	got := run(t, `{message}{..:json,compact}`, input,
		format.Options{NoColor: true},
		stream.Config{NoColor: true})

	assert.Equal(t, "a{\"x\":1}\n{\"y\":2}\n", got)
}

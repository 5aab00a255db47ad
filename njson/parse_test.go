package njson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jlv/njson"
)

func TestParseBasic(t *testing.T) {
	t.Parallel()

	var doc njson.Node

	require.NoError(t, doc.Parse(`{"key": "value", "num": 42, "ok": true, "none": null}`))

	s, ok := doc.Get("key").Str()
	require.True(t, ok)
	assert.Equal(t, "value", s)

	v, ok := doc.Get("num").Value()
	require.True(t, ok)
	assert.Equal(t, "42", v)

	v, ok = doc.Get("ok").Value()
	require.True(t, ok)
	assert.Equal(t, "true", v)

	assert.True(t, doc.Get("none").IsNull())
	assert.True(t, doc.Get("missing").IsNull())
}

func TestParseNested(t *testing.T) {
	t.Parallel()

	var doc njson.Node

	require.NoError(t, doc.Parse(`{"spans": [{"name": "a"}, {"name": "b"}], "empty": {}}`))

	s, ok := doc.Get("spans").Index(1).Get("name").Str()
	require.True(t, ok)
	assert.Equal(t, "b", s)

	assert.True(t, doc.Get("spans").Index(5).IsNull())
	assert.True(t, doc.Get("empty").IsObject())
	assert.True(t, doc.Get("empty").IsEmpty())
}

func TestParseEscapes(t *testing.T) {
	t.Parallel()

	var doc njson.Node

	require.NoError(t, doc.Parse(`{"escaped": "This is a \"test\""}`))

	// Escapes are preserved, not decoded.
	s, ok := doc.Get("escaped").Str()
	require.True(t, ok)
	assert.Equal(t, `This is a \"test\"`, s)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		message string
	}{
		"top level not container": {
			input:   `"just a string"`,
			message: "JSON must be an object or array",
		},
		"top level raw": {
			input:   `not json`,
			message: "JSON must be an object or array",
		},
		"missing closing brace": {
			input:   `{"key": "value"`,
			message: "Expected comma or closing brace '}' in object",
		},
		"missing closing quote": {
			input:   `{"key": "value      }`,
			message: "Closing quote not found for string started",
		},
		"missing colon": {
			input:   `{"key"     ,     "value"}`,
			message: "Expected colon ':' after key in object",
		},
		"trailing comma in object": {
			input:   `{"key1": "value1", "key2": "value2"    ,    }`,
			message: "Unexpected char in object",
		},
		"unquoted key": {
			input:   `{key: "value"}`,
			message: "Unexpected char in object",
		},
		"unclosed array": {
			input:   `{"array": [1, 2, "missing bracket"   }`,
			message: "Expected comma or closing bracket ']' in array",
		},
		"stray closing bracket": {
			input:   `[1, ]`,
			message: "Unexpected closing bracket",
		},
		"stray closing brace": {
			input:   `{"a": }`,
			message: "Unexpected closing brace",
		},
		"invalid null": {
			input:   `{"a": nul}`,
			message: "Invalid null value",
		},
		"unexpected end": {
			input:   `[`,
			message: "Unexpected end of input",
		},
		"empty input": {
			input:   ``,
			message: "Unexpected end of input",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var doc njson.Node

			err := doc.Parse(tc.input)
			require.Error(t, err)

			var perr *njson.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.message, perr.Message)
		})
	}
}

func TestParseErrorDiagnostic(t *testing.T) {
	t.Parallel()

	var doc njson.Node

	err := doc.Parse("not json")
	require.Error(t, err)

	var perr *njson.ParseError
	require.ErrorAs(t, err, &perr)

	assert.Equal(t, 0, perr.Index)
	assert.Equal(t,
		"JSON must be an object or array at index 0: 'not json'",
		perr.Error())
	assert.Equal(t,
		"JSON must be an object or array at index 0:\n'not json'\n ^",
		perr.Diagnostic())
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	// Inputs are already in compact form and contain no nulls, so parsing
	// and re-emitting must reproduce them byte for byte.
	tcs := []string{
		`{}`,
		`[]`,
		`{"key":"value"}`,
		`{"nested":{"array":[1,"two"],"emptyObj":{},"bool":true}}`,
		`["mixed",123,{"obj":"inside array"}]`,
		`{"escaped":"a \"quoted\" part"}`,
		`{"nums":[0,-1.5,2e10]}`,
	}

	for _, input := range tcs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			var doc njson.Node

			require.NoError(t, doc.Parse(input))
			emitted := doc.CompactString()
			assert.Equal(t, input, emitted)

			// Parsing the emission again is a fixed point.
			var doc2 njson.Node

			require.NoError(t, doc2.Parse(emitted))
			assert.Equal(t, emitted, doc2.CompactString())
		})
	}
}

func TestParseWhitespaceNormalized(t *testing.T) {
	t.Parallel()

	var doc njson.Node

	require.NoError(t, doc.Parse("  {\"a\": 1 ,\t\"b\": [ true , \"x\" ] }  "))
	assert.Equal(t, `{"a":1,"b":[true,"x"]}`, doc.CompactString())
}

func TestParseReuseMatchesFreshParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		first  string
		second string
	}{
		"same schema": {
			first:  `{"a":1,"b":"x"}`,
			second: `{"a":2,"b":"y"}`,
		},
		"fewer keys": {
			first:  `{"a":1,"b":2,"c":3}`,
			second: `{"a":9}`,
		},
		"more keys": {
			first:  `{"a":1}`,
			second: `{"a":1,"b":2,"c":3}`,
		},
		"object to array": {
			first:  `{"a":{"x":1}}`,
			second: `{"a":[1,2]}`,
		},
		"array to object": {
			first:  `{"a":[1,2]}`,
			second: `{"a":{"x":1}}`,
		},
		"array shrinks": {
			first:  `[1,2,3,4]`,
			second: `[9]`,
		},
		"nested null then object": {
			first:  `{"a":{"x":1},"b":2}`,
			second: `{"a":null,"b":3}`,
		},
		"string replaces object": {
			first:  `{"a":{"x":1}}`,
			second: `{"a":"s"}`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var reused njson.Node

			require.NoError(t, reused.Parse(tc.first))
			require.NoError(t, reused.Parse(tc.second))

			var fresh njson.Node

			require.NoError(t, fresh.Parse(tc.second))

			assert.Equal(t, fresh.CompactString(), reused.CompactString())
		})
	}
}

func TestParseReuseKeepsCarrier(t *testing.T) {
	t.Parallel()

	var doc njson.Node

	require.NoError(t, doc.Parse(`{"a":{"x":1}}`))
	require.Equal(t, njson.KindObject, doc.Get("a").Kind())

	// Null demotes the slot to a carrier instead of freeing it.
	require.NoError(t, doc.Parse(`{"a":null}`))
	assert.Equal(t, njson.KindNullPrevObject, doc.Get("a").Kind())
	assert.True(t, doc.Get("a").IsNull())

	// A later object in the same slot reuses the carrier.
	require.NoError(t, doc.Parse(`{"a":{"y":2}}`))
	assert.Equal(t, njson.KindObject, doc.Get("a").Kind())
	assert.Equal(t, `{"a":{"y":2}}`, doc.CompactString())

	require.NoError(t, doc.Parse(`{"a":[1]}`))
	require.NoError(t, doc.Parse(`{"a":null}`))
	assert.Equal(t, njson.KindNullPrevArray, doc.Get("a").Kind())
}

func TestParseShrunkObjectKeysAreNull(t *testing.T) {
	t.Parallel()

	var doc njson.Node

	require.NoError(t, doc.Parse(`{"a":1,"b":2}`))
	require.NoError(t, doc.Parse(`{"a":3}`))

	// The stale key survives in storage but reads as null and is skipped
	// during emission.
	assert.True(t, doc.Get("b").IsNull())
	assert.Equal(t, `{"a":3}`, doc.CompactString())
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jlv/format"
)

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
[config]
format = "{&output}"
compact = true
no_color = false
strict = true

[variables]
message = "{text}"
extra = "{..:json}"
`)

	f, err := parse(data, "test.toml")
	require.NoError(t, err)

	require.NotNil(t, f.Format)
	assert.Equal(t, "{&output}", *f.Format)

	require.NotNil(t, f.Compact)
	assert.True(t, *f.Compact)

	require.NotNil(t, f.NoColor)
	assert.False(t, *f.NoColor)

	require.NotNil(t, f.Strict)
	assert.True(t, *f.Strict)

	assert.Equal(t, []format.Variable{
		{Key: "message", Body: "{text}"},
		{Key: "extra", Body: "{..:json}"},
	}, f.Variables)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	f, err := parse([]byte(""), "test.toml")
	require.NoError(t, err)

	assert.Nil(t, f.Format)
	assert.Nil(t, f.Compact)
	assert.Empty(t, f.Variables)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	_, err := parse([]byte(`[config`), "test.toml")
	require.Error(t, err)
}

func TestVariableOrder(t *testing.T) {
	t.Parallel()

	data := []byte(`
[config]
compact = true

[variables]
# comment lines are skipped
zebra = "{z}"
"quoted key" = "{q}"
alpha = "{a}"
`)

	assert.Equal(t, []string{"zebra", "quoted key", "alpha"}, variableOrder(data))
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tr := true
	fa := false
	home := &File{
		Compact: &tr,
		Strict:  &tr,
		Variables: []format.Variable{
			{Key: "a", Body: "1"},
			{Key: "b", Body: "2"},
		},
	}
	workspace := &File{
		Compact: &fa,
		Variables: []format.Variable{
			{Key: "b", Body: "override"},
			{Key: "c", Body: "3"},
		},
	}

	merged := &File{}
	merged.merge(home)
	merged.merge(workspace)

	// Workspace wins where set; home survives elsewhere.
	require.NotNil(t, merged.Compact)
	assert.False(t, *merged.Compact)
	require.NotNil(t, merged.Strict)
	assert.True(t, *merged.Strict)
	assert.Nil(t, merged.NoColor)

	// Overrides keep their original position; new keys append.
	assert.Equal(t, []format.Variable{
		{Key: "a", Body: "1"},
		{Key: "b", Body: "override"},
		{Key: "c", Body: "3"},
	}, merged.Variables)
}

func TestApply(t *testing.T) {
	t.Parallel()

	f := &File{Variables: []format.Variable{
		{Key: "message", Body: "{text}"},
		{Key: "custom", Body: "{x}"},
	}}

	vars := format.DefaultVariables()
	f.Apply(vars)

	body, ok := vars.Get("message")
	require.True(t, ok)
	assert.Equal(t, "{text}", body)

	body, ok = vars.Get("custom")
	require.True(t, ok)
	assert.Equal(t, "{x}", body)
}

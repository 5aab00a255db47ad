package format

import "strings"

// Variable is one named template fragment.
type Variable struct {
	Key  string
	Body string
}

// Variables is an insertion-ordered table of template fragments referenced
// from templates as {&key}. Setting an existing key overwrites its body in
// place; new keys append.
type Variables struct {
	pairs []Variable
}

// DefaultVariables returns the built-in table. The default template
// {&output} renders a timestamp/level/message line followed by the
// remaining fields as a JSON block.
func DefaultVariables() *Variables {
	return &Variables{pairs: []Variable{
		{"output", `{#key &log}{&log_fmt}{&new_line}{/key}{&data_fmt}`},
		{"log", `{&timestamp|&level|&message}`},
		{"log_fmt", `{&timestamp_fmt}{&level_fmt}{&message_fmt}`},
		{"timestamp_fmt", `{#key &timestamp}{&timestamp:dimmed} {/key}`},
		{"timestamp", `{timestamp}`},
		{"level_fmt", `{#key &level}{&level:level} {/key}`},
		{"level", `{level|lvl|severity}`},
		{"message_fmt", `{&message}`},
		{"message", `{message|msg|body|fields.message}`},
		{"new_line", `{#key &data}{#config compact} {:else}\n{/config}{/key}`},
		{"data_fmt", `{&data:json}`},
		{"data", `{..}`},
	}}
}

// Get returns the body for key.
func (v *Variables) Get(key string) (string, bool) {
	for _, p := range v.pairs {
		if p.Key == key {
			return p.Body, true
		}
	}

	return "", false
}

// Set overwrites the body for key, or appends a new entry when the key is
// not present.
func (v *Variables) Set(key, body string) {
	for i := range v.pairs {
		if v.pairs[i].Key == key {
			v.pairs[i].Body = body

			return
		}
	}

	v.pairs = append(v.pairs, Variable{Key: key, Body: body})
}

// All returns the table entries in insertion order. The slice is shared;
// callers must not modify it.
func (v *Variables) All() []Variable {
	return v.pairs
}

// ApplyAssignments folds KEY=VALUE strings into the table. Entries without
// an equals sign are ignored.
func (v *Variables) ApplyAssignments(assignments []string) {
	for _, a := range assignments {
		key, body, ok := strings.Cut(a, "=")
		if !ok {
			continue
		}

		v.Set(key, body)
	}
}

// Package format implements the log template language: a small string
// syntax compiled once and evaluated against every parsed record.
//
// A template mixes literal text, backslash escapes, and {...} tags. An
// argument tag names field alternatives with an optional style, e.g.
// {level|severity:level} or {..:json,compact}. Conditional tags bracket
// spans: {#if field}...{:else if other}...{:else}...{/if}, with {#key field}
// testing presence rather than truthiness and {#config compact|no_color}
// testing flags captured at compile time. Variable references ({&name}) are
// rewritten away by [Expand] before [Compile] runs.
//
// Field syntax: a dotted path whose segments may carry a bracketed index
// (spans[1].name), "." for the whole record, and ".." for the record minus
// every field a previous argument already rendered.
package format

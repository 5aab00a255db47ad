// Package njson parses newline-delimited JSON records into a reusable
// in-place document and renders them with optional ANSI styling.
//
// The parser is deliberately lenient: it does not validate numbers,
// booleans, or Unicode escapes. Any unquoted run of bytes up to the next
// structural character is kept verbatim as a [KindValue] token, and string
// escapes are preserved rather than decoded. The only hard requirement is
// that the top level is an object or array.
//
// A [Node] is built for streams. Re-parsing the next line into the same node
// with [Node.Parse] reuses the container allocations of the previous line:
// matching slots are overwritten positionally, and slots whose new value is
// null keep their old storage under the [KindNullPrevObject] and
// [KindNullPrevArray] variants so a later line with the same shape allocates
// nothing. On a stream of same-schema records the steady state is
// allocation-free.
//
// Because every string in the tree borrows from the parse input, a document
// is only valid until the next [Node.Parse] call. Callers must finish
// rendering before reusing or discarding the input line.
package njson

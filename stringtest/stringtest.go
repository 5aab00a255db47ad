// Package stringtest has small helpers for building expected multi-line
// output in tests.
package stringtest

import "strings"

// JoinLF joins the given lines with LF line endings, making the line
// structure of an expected value explicit at the call site:
//
//	want := stringtest.JoinLF(
//		`{`,
//		`  "a": 1`,
//		`}`,
//	)
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

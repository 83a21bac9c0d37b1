// Package text provides small string utilities shared by the domain layer.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Length limits on names and titles are expressed in characters, not bytes.
//
// Examples:
//
//	CountRunes("Vogue")      // returns 5
//	CountRunes("日本語の記事") // returns 6
//	CountRunes("")           // returns 0
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

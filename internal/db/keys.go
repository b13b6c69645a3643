package db

import "strings"

var (
	segmentEscaper = strings.NewReplacer(`%`, `%25`, `:`, `%3A`)
	globEscaper    = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
)

// KeySegment escapes one id for use between ':' separators, so that distinct
// id tuples never join into the same key.
func KeySegment(id string) string {
	return segmentEscaper.Replace(id)
}

// EscapeGlob quotes SCAN/KEYS pattern metacharacters in s.
func EscapeGlob(s string) string {
	return globEscaper.Replace(s)
}

package app

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

var (
	sqlLineComment  = regexp.MustCompile(`--[^\n]*`)
	sqlBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	sqlStringLit    = regexp.MustCompile(`'(?:[^']|'')*'`)
	sqlWhitespace   = regexp.MustCompile(`\s+`)
)

// formatDBQueryForTrace turns a statement into a span attribute: comments
// dropped, string literals replaced by '?', whitespace collapsed, and the
// result cut to maxTracedQueryLength bytes on a rune boundary.
func formatDBQueryForTrace(query string) string {
	query = sqlBlockComment.ReplaceAllString(query, " ")
	query = sqlLineComment.ReplaceAllString(query, " ")
	query = sqlStringLit.ReplaceAllString(query, "'?'")
	query = strings.TrimSpace(sqlWhitespace.ReplaceAllString(query, " "))
	if len(query) <= maxTracedQueryLength {
		return query
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}

package geo

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds s into the form used on both sides of every comparison:
// NFKC, whitespace runs collapsed to a single space, lowercase.
func Normalize(s string) string {
	fields := strings.Fields(norm.NFKC.String(s))
	if len(fields) == 0 {
		return ""
	}

	return strings.ToLower(strings.Join(fields, " "))
}

// Haystack joins the searchable fields of a story and normalizes the result.
// District is not part of the haystack; it short-circuits matching instead.
func Haystack(s Story) string {
	parts := make([]string, 0, 5)

	for _, f := range []string{s.Headline, s.Summary, s.OriginalHeadline, s.OriginalSummary, s.City} {
		if f != "" {
			parts = append(parts, f)
		}
	}

	return Normalize(strings.Join(parts, " "))
}

// Tokens splits a haystack on whitespace and keeps tokens of at least minLen runes.
func Tokens(haystack string, minLen int) []string {
	fields := strings.Fields(haystack)

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minLen {
			tokens = append(tokens, f)
		}
	}

	return tokens
}

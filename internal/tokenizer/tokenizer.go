package tokenizer

import (
	"strings"
)

// Normalize case-folds a whole-field value (a tag, an organization name, an
// industry label) into a single token: lower-cased with surrounding
// whitespace trimmed. Interior whitespace is preserved so multi-word tags
// like "data science" stay one token.
func Normalize(field string) string {
	return strings.ToLower(strings.TrimSpace(field))
}

// Tokenize converts free text into word tokens: lower-cased and split on
// whitespace. Empty input yields an empty slice, never nil.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))

	tokens := make([]string, 0, len(fields))
	tokens = append(tokens, fields...)
	return tokens
}

// TokenSet builds a deduplicated set from word tokens of the given text.
// Used by the ranking pass for title-word intersections.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range Tokenize(text) {
		set[token] = struct{}{}
	}
	return set
}

// NormalizeAll normalizes every whole-field value in the slice, dropping
// values that normalize to the empty string.
func NormalizeAll(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if n := Normalize(f); n != "" {
			out = append(out, n)
		}
	}
	return out
}

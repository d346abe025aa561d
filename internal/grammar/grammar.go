// Package grammar provides the low-level tokenization primitives for the
// command-palette input line. The parser builds on two operations: peeling
// off the first whitespace-delimited token, and splitting a remainder into
// its full token list. Both report whether the input ends in whitespace,
// which the parser treats as token confirmation.
package grammar

import "strings"

// FirstToken splits raw input into its leading whitespace-delimited token
// and the remainder (with the separating whitespace stripped from the
// remainder's front). trailing reports whether the input as a whole ends in
// whitespace. Empty input yields an empty token.
func FirstToken(input string) (token, rest string, trailing bool) {
	trailing = endsInSpace(input)
	trimmed := strings.TrimLeft(input, " \t")
	if trimmed == "" {
		return "", "", trailing
	}
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return trimmed, "", trailing
	}
	return trimmed[:idx], strings.TrimLeft(trimmed[idx:], " \t"), trailing
}

// Tokenize splits a remainder into its full token list. trailing reports
// whether the input ends in whitespace, i.e. whether the last token is
// confirmed rather than still being typed. Empty or all-space input yields
// a nil slice.
func Tokenize(input string) (tokens []string, trailing bool) {
	trailing = endsInSpace(input)
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, trailing
	}
	return fields, trailing
}

// JoinRest reassembles the tokens from index i onward into a single query
// string with normalized single-space separation.
func JoinRest(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	return strings.Join(tokens[i:], " ")
}

func endsInSpace(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == ' ' || last == '\t'
}

package main

import (
	"strings"
	"unicode"
)

// makeIdentUnderscores turns a space-separated artifact name like
// "instr len" into "instr_len", which we use for output file names.
func makeIdentUnderscores(inp string) string {
	var b strings.Builder
	for i, r := range inp {
		switch {
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// makeIdentTitle produces an exported Go identifier, so "prefix instr debug
// lookup" becomes "PrefixInstrDebugLookup".
func makeIdentTitle(inp string) string {
	var b strings.Builder
	nextUpper := true
	for i, r := range inp {
		switch {
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			nextUpper = true
		case unicode.IsLetter(r):
			if nextUpper {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			nextUpper = false
		default:
			nextUpper = true
		}
	}
	return b.String()
}

// makeIdentCamel is makeIdentTitle for unexported identifiers.
func makeIdentCamel(inp string) string {
	title := makeIdentTitle(inp)
	if title == "" || title[0] == '_' {
		return title
	}
	return strings.ToLower(title[:1]) + title[1:]
}

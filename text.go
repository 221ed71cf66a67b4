package siteqa

import "strings"

// NormalizeText cleans linearized page text. Each line is trimmed and split
// on runs of two or more spaces; every surviving non-empty fragment becomes
// its own line, in original order.
func NormalizeText(text string) string {
	var fragments []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				fragments = append(fragments, phrase)
			}
		}
	}
	return strings.Join(fragments, "\n")
}

// isLineBreak reports line boundaries, including the vertical tab, form feed
// and Unicode line/paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

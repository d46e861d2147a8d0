package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

var reSpaces = regexp.MustCompile(`\s+`)

// Line breaks inside a pasted address separate lines the same way commas do
var reLineBreak = regexp.MustCompile(`\s*(?:\r\n|\r|\n)+\s*`)

var reRepeatedComma = regexp.MustCompile(`\s*,(?:\s*,)+\s*`)

// Spaces collapses every whitespace run to a single space and trims the ends.
func Spaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// LineBreaksToCommas rewrites embedded newlines as comma separators so that
// multi-line input segments the same way as a single comma-separated line.
func LineBreaksToCommas(s string) string {
	s = reLineBreak.ReplaceAllString(strings.TrimSpace(s), ", ")
	return reRepeatedComma.ReplaceAllString(s, ", ")
}

// TrimPunct strips separators and stray punctuation from both ends of a
// fragment left behind after a field has been cut out of it.
func TrimPunct(s string) string {
	return strings.Trim(strings.TrimSpace(s), " ,;:-")
}

// StripEnclosingParens removes exactly one layer of parentheses when they
// wrap the whole string, e.g. "(123 Main St)".
func StripEnclosingParens(s string) string {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '(' || t[len(t)-1] != ')' {
		return t
	}

	// The opening paren must close at the very end, otherwise "(A) B (C)"
	// would lose its structure.
	depth := 0
	for i, r := range t {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(t)-1 {
				return t
			}
		}
	}
	return strings.TrimSpace(t[1 : len(t)-1])
}

// Fold lowercases s and transliterates accented letters to ASCII so
// "Québec" and "QUEBEC" share a dictionary key.
func Fold(s string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(s)))
}

// SplitSegments splits on commas that are not inside parentheses. Segments
// are trimmed and empty ones dropped.
func SplitSegments(s string) []string {
	var segments []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if seg := strings.TrimSpace(s[start:i]); seg != "" {
					segments = append(segments, seg)
				}
				start = i + 1
			}
		}
	}
	if seg := strings.TrimSpace(s[start:]); seg != "" {
		segments = append(segments, seg)
	}
	return segments
}

// IsTitleCase reports whether every word starts with an upper-case letter or
// a digit. Words listed in connectors ("of", "the", ...) are ignored, so
// "Museum of Fine Arts" qualifies.
func IsTitleCase(text string, connectors map[string]bool) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}

	seen := 0
	for _, word := range words {
		word = strings.Trim(word, `"'().,&-`)
		if word == "" {
			continue
		}
		if connectors[strings.ToLower(word)] {
			continue
		}
		first := []rune(word)[0]
		if !unicode.IsUpper(first) && !unicode.IsDigit(first) {
			return false
		}
		seen++
	}
	return seen > 0
}

// AlnumRatio returns the share of non-space runes that are letters or digits.
func AlnumRatio(s string) float64 {
	total, alnum := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alnum) / float64(total)
}

// HasDigit reports whether s contains any decimal digit.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// HasLetter reports whether s contains any letter.
func HasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

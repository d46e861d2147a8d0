// Package pattern compiles the static dictionaries into regular expressions.
//
// Every dictionary becomes a single alternation ordered longest key first.
// Go's regexp engine picks the leftmost alternative that matches, so the
// ordering is what stops "st" from shadowing "street".
package pattern

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/postline/internal/dictionary"
)

// matchNothing is used for empty dictionaries; it can never match.
const matchNothing = `[^\s\S]`

// SortedKeys returns the dictionary keys longest first, ties broken
// alphabetically so the output is stable.
func SortedKeys(d dictionary.Dict) []string {
	keys := d.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(keys[i]), utf8.RuneCountInString(keys[j])
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Alternation returns the uncompiled alternation source for d, without a
// group and without flags, for composition into larger expressions. Each
// key is escaped, internal spaces accept any whitespace run, and keys get a
// word boundary on each side that starts or ends with a word character.
func Alternation(d dictionary.Dict) string {
	return alternation(d, strings.ToLower)
}

// UpperAlternation is Alternation over upper-cased keys. Combined with a
// case-sensitive context it matches abbreviations only when written in
// capitals ("IN" the state, not "in" the preposition).
func UpperAlternation(d dictionary.Dict) string {
	return alternation(d, strings.ToUpper)
}

func alternation(d dictionary.Dict, casing func(string) string) string {
	keys := SortedKeys(d)
	if len(keys) == 0 {
		return matchNothing
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, bounded(casing(key)))
	}
	return strings.Join(parts, "|")
}

// bounded escapes key and wraps it in the word boundaries it can support.
// RE2's \b only understands ASCII word characters, so a key ending in "."
// or an accented letter gets no boundary on that side.
func bounded(key string) string {
	words := strings.Fields(key)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	body := strings.Join(words, `\s+`)

	first, _ := utf8.DecodeRuneInString(key)
	last, _ := utf8.DecodeLastRuneInString(key)
	if isASCIIWord(first) {
		body = `\b` + body
	}
	if isASCIIWord(last) {
		body += `\b`
	}
	return body
}

func isASCIIWord(r rune) bool {
	return r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// BuildAlternation compiles d into a case-insensitive whole-word pattern.
// With capturing set the alternation is group 1. An empty dictionary yields
// a pattern that matches nothing.
func BuildAlternation(d dictionary.Dict, capturing bool) *regexp.Regexp {
	alt := Alternation(d)
	if d.Len() == 0 {
		return regexp.MustCompile(matchNothing)
	}
	if capturing {
		return regexp.MustCompile(`(?i)(` + alt + `)`)
	}
	return regexp.MustCompile(`(?i)(?:` + alt + `)`)
}

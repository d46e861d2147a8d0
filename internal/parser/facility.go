package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/postline/internal/normalize"
	"github.com/postline/internal/pattern"
)

// FacilityInput is what a facility rule sees: the first segment of the
// address (Raw keeps its original spacing) and the segments after it.
type FacilityInput struct {
	Segment    string
	Raw        string
	Following  []string
	Connectors map[string]bool
}

// FacilityMatch is a detected facility. Address is the street text recovered
// from the segment; when empty the following segments carry the address.
// KeepAsStreet means the facility name doubles as the street.
type FacilityMatch struct {
	Place        string
	Address      string
	KeepAsStreet bool
}

// FacilityRule is one facility heuristic. Rules are data: they are tried in
// order and the first that fires wins.
type FacilityRule struct {
	Name   string
	Detect func(in FacilityInput) (FacilityMatch, bool)
}

var (
	reFacilityParen     = regexp.MustCompile(`^([^()]+?)\s*\(([^()]*\d[^()]*)\)\s*$`)
	reFacilityDelimiter = regexp.MustCompile(`^(.+?)\s*(?::\s*|\s+-\s+)(\d.*)$`)
	reIslandEnd         = regexp.MustCompile(`(?i)\bisland$`)
)

// DefaultFacilityRules returns the built-in rules: an inline parenthesised
// address, an address after ":" or " - ", a trailing "Island" name, and a
// Title-Case name containing a facility keyword.
func DefaultFacilityRules() []FacilityRule {
	return []FacilityRule{
		{Name: "parenthetical", Detect: detectParenthetical},
		{Name: "delimiter", Detect: detectDelimiter},
		{Name: "island", Detect: detectIsland},
		{Name: "keyword", Detect: detectKeyword},
	}
}

// "Union Station (800 N Alameda St)"
func detectParenthetical(in FacilityInput) (FacilityMatch, bool) {
	m := reFacilityParen.FindStringSubmatch(in.Segment)
	if m == nil || !normalize.HasLetter(m[1]) {
		return FacilityMatch{}, false
	}
	return FacilityMatch{Place: normalize.TrimPunct(m[1]), Address: strings.TrimSpace(m[2])}, true
}

// "City Hall: 100 Main St" and "City Hall - 100 Main St"
func detectDelimiter(in FacilityInput) (FacilityMatch, bool) {
	m := reFacilityDelimiter.FindStringSubmatch(in.Segment)
	if m == nil || !normalize.HasLetter(m[1]) || normalize.HasDigit(m[1]) {
		return FacilityMatch{}, false
	}
	return FacilityMatch{Place: normalize.TrimPunct(m[1]), Address: strings.TrimSpace(m[2])}, true
}

func detectIsland(in FacilityInput) (FacilityMatch, bool) {
	if normalize.HasDigit(in.Segment) || !reIslandEnd.MatchString(in.Segment) {
		return FacilityMatch{}, false
	}
	name := in.Segment
	if in.Raw != "" && normalize.Spaces(in.Raw) == in.Segment {
		name = strings.TrimSpace(in.Raw)
	}
	return FacilityMatch{Place: name, Address: name, KeepAsStreet: true}, true
}

// detectKeyword fires when the words before the first number form a
// Title-Case name containing a facility keyword, and a numbered address
// can be recovered from the rest of the segment or the following segments.
func detectKeyword(in FacilityInput) (FacilityMatch, bool) {
	words := strings.Fields(in.Segment)
	idx := len(words)
	for i, w := range words {
		if r := []rune(w)[0]; unicode.IsDigit(r) {
			idx = i
			break
		}
	}
	if idx == 0 {
		return FacilityMatch{}, false
	}

	name := strings.Join(words[:idx], " ")
	if !pattern.Default().FacilityWord.MatchString(name) || !normalize.IsTitleCase(name, in.Connectors) {
		return FacilityMatch{}, false
	}

	address := strings.Join(words[idx:], " ")
	recovered := address
	if recovered == "" {
		recovered = strings.Join(in.Following, ", ")
	}
	if recovered == "" || !unicode.IsDigit([]rune(recovered)[0]) {
		return FacilityMatch{}, false
	}
	return FacilityMatch{Place: name, Address: address}, true
}

// detectFacility runs the rules in order.
func detectFacility(in FacilityInput, rules []FacilityRule) (FacilityMatch, string, bool) {
	for _, rule := range rules {
		if rule.Detect == nil {
			continue
		}
		if m, ok := rule.Detect(in); ok && m.Place != "" {
			return m, rule.Name, true
		}
	}
	return FacilityMatch{}, "", false
}

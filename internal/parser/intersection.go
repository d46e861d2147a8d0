package parser

import (
	"strings"

	"github.com/postline/internal/debug"
	"github.com/postline/internal/dictionary"
	"github.com/postline/internal/normalize"
	"github.com/postline/internal/validation"
)

// ParseIntersection parses "Main St and Oak Ave, Springfield, IL". The
// input is split on the first connector (and, &, at, @); the locality is
// stripped from the end of the second half. It returns nil unless both
// halves yield a street. Only one split point is supported: a second
// connector in the second half is rejected.
func ParseIntersection(input string, opts Options) *ParsedIntersection {
	opts = opts.resolved()
	x := patterns()
	text := normalize.Spaces(normalize.LineBreaksToCommas(input))

	loc := x.set.Connector.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	left := normalize.TrimPunct(text[:loc[0]])
	right := normalize.TrimPunct(text[loc[1]:])
	if left == "" || right == "" {
		return nil
	}
	if x.set.Connector.MatchString(right) {
		debug.DebugOutput(opts.Debug, "intersection: more than one connector in %q", text)
		return nil
	}
	// "123 Main St & Co" is a house address, not a crossing.
	if x.pureNumber.MatchString(left) || x.pureNumber.MatchString(right) {
		return nil
	}

	t, segs := stripTail(normalize.SplitSegments(right), x, opts)
	// "Texas A&M University, 400 Bizzell St, ...": a numbered street after
	// the connector means the connector was part of a name.
	if x.numberedStreet.MatchString(strings.Join(segs, ", ")) {
		debug.DebugOutput(opts.Debug, "intersection: house number in second half %q", segs)
		return nil
	}

	var r ParsedIntersection
	r.Prefix1, r.Street1, r.Type1, r.Suffix1 = parseStreetHalf(left, x)
	r.Prefix2, r.Street2, r.Type2, r.Suffix2 = parseStreetHalf(strings.Join(segs, " "), x)
	if !r.Valid() {
		return nil
	}

	r.City = t.city
	if t.state != "" {
		if region, ok := dictionary.LookupRegion(t.state); ok {
			r.State = region.Abbr
		}
	}
	if t.zip != "" {
		pr := validation.ValidatePostalCode(t.zip)
		if pr.IsValid || !opts.Strict {
			r.Zip = pr.Formatted
			if pr.Type == validation.PostalTypeZip {
				r.Zip, r.Plus4 = validation.SplitZip(pr.Formatted)
			}
		}
	}
	r.Country = resolveCountry(t.country, r.State, t.zip, opts)
	debug.DebugOutput(opts.Debug, "intersection: %s", r.String())
	return &r
}

// parseStreetHalf reads an optional leading directional, a name, an
// optional type and an optional trailing directional. Without a type the
// whole text is the name and the type is "".
func parseStreetHalf(text string, x *exprs) (prefix, street, typ, suffix string) {
	text = cleanStreet(text)
	if text == "" {
		return
	}

	if m := x.leadingDir.FindStringSubmatch(text); m != nil && !isTypeOnly(m[2]) {
		prefix = directional(m[1])
		text = m[2]
	}

	if m := x.typeDir.FindStringSubmatch(text); m != nil && cleanStreet(m[1]) != "" {
		return prefix, cleanStreet(m[1]), streetType(m[2]), directional(m[3])
	}
	if m := x.typeOnly.FindStringSubmatch(text); m != nil && cleanStreet(m[1]) != "" {
		return prefix, cleanStreet(m[1]), streetType(m[2]), ""
	}
	if m := x.french.FindStringSubmatch(text); m != nil && cleanStreet(m[2]) != "" {
		typ, _ = dictionary.FrenchStreetTypes().Lookup(m[1])
		if m[3] != "" {
			suffix = directional(m[3])
		}
		return prefix, cleanStreet(m[2]), typ, suffix
	}
	if m := x.dirEnd.FindStringSubmatch(text); m != nil && cleanStreet(m[1]) != "" {
		return prefix, cleanStreet(m[1]), "", directional(m[2])
	}
	return prefix, text, "", ""
}

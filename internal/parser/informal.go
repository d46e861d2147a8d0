package parser

import (
	"github.com/postline/internal/normalize"
	"github.com/postline/internal/validation"
)

// ParseInformalAddress is the last-resort parser: a leading number and the
// rest of the first segment as the street, plus a postal code from the last
// segment when there is more than one. No facility, region or strict-mode
// handling. Input that is only a postal code, a unit, or a place name in
// front of a region gives nil rather than a street made of it.
func ParseInformalAddress(input string, opts Options) *ParsedAddress {
	opts = opts.resolved()
	x := patterns()

	segs := normalize.SplitSegments(normalize.LineBreaksToCommas(input))
	if len(segs) == 0 {
		return nil
	}
	first := normalize.Spaces(segs[0])
	if incidentalOnly(segs, x, opts) {
		return nil
	}

	var rec ParsedAddress
	if m := x.informalLead.FindStringSubmatch(first); m != nil {
		rec.Number = m[1]
		rec.Street = cleanStreet(m[2])
	} else {
		rec.Street = cleanStreet(first)
	}

	if len(segs) > 1 {
		last := normalize.Spaces(segs[len(segs)-1])
		if m := x.region(opts.Country).postalEnd.FindStringSubmatch(last); m != nil {
			pr := validation.ValidatePostalCode(m[2])
			setPostal(&rec, pr)
			if opts.ValidatePostalCode || !pr.IsValid {
				rec.ZipValid = boolPtr(pr.IsValid)
			}
			rec.Country = resolveCountry("", "", m[2], opts)
		}
	}

	if !rec.Meaningful() {
		return nil
	}
	return &rec
}

// incidentalOnly reports whether the segments hold no street at all: a
// first segment without letters ("90210, CA"), a lone unit ("Suite 100"),
// or nothing but a locality, region and postal code.
func incidentalOnly(segs []string, x *exprs, opts Options) bool {
	spaced := make([]string, len(segs))
	for i, seg := range segs {
		spaced[i] = normalize.Spaces(seg)
	}
	if !normalize.HasLetter(spaced[0]) || x.unitOnly.MatchString(spaced[0]) {
		return true
	}
	t, rest := stripTail(spaced, x, opts)
	return len(rest) == 0 || rest[0] == "" || localityOnly(rest, t, x)
}

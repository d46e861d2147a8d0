package parser

import (
	"strings"

	"github.com/postline/internal/debug"
	"github.com/postline/internal/dictionary"
	"github.com/postline/internal/normalize"
)

// ParsePoBox parses PO box, rural route and RPO addresses. The unambiguous
// "PO Box 12, City, ST 12345" form is tried first; otherwise the box is
// peeled off the front, followed by an optional station, RPO or rural
// route designation, a trailing postal code and finally the city and
// region. It returns nil when there is no box indicator followed by a
// number.
func ParsePoBox(input string, opts Options) *ParsedAddress {
	opts = opts.resolved()
	x := patterns()
	text := normalize.Spaces(normalize.LineBreaksToCommas(input))
	if text == "" {
		return nil
	}

	if m := x.poStrict.FindStringSubmatch(text); m != nil {
		if region, ok := dictionary.LookupRegion(m[4]); ok && countryAllowed(region.Country, opts) {
			var rec ParsedAddress
			setBox(&rec, m[1], m[2])
			rec.City = normalize.TrimPunct(m[3])
			rec.State = region.Abbr
			assignPostal(&rec, m[5], opts)
			rec.Country = resolveCountry("", rec.State, m[5], opts)
			debug.DebugOutput(opts.Debug, "po box (strict): %s", rec.String())
			return &rec
		}
	}

	m := x.poLead.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var rec ParsedAddress
	rec.Place = normalize.TrimPunct(m[1])
	setBox(&rec, m[2], m[3])
	rest := normalize.TrimPunct(m[4])

	rest = deliveryModifier(&rec, rest, x)

	re := x.region(opts.Country)
	var code string
	if pm := re.postalEnd.FindStringSubmatch(rest); pm != nil {
		code = pm[2]
		rest = normalize.TrimPunct(pm[1])
	}

	rec.City, rec.State = boxLocality(rest, re)
	if rec.State != "" {
		if region, ok := dictionary.LookupRegion(rec.State); ok {
			rec.State = region.Abbr
		}
	}
	assignPostal(&rec, code, opts)
	rec.Country = resolveCountry("", rec.State, code, opts)
	debug.DebugOutput(opts.Debug, "po box: %s", rec.String())
	return &rec
}

// setBox records the delivery indicator under its canonical label. The
// street is set to label and number so the record is never empty.
func setBox(rec *ParsedAddress, indicator, number string) {
	number = strings.ToUpper(number)
	label := "PO Box"
	switch {
	case dictionary.RuralRouteIndicators().Has(indicator):
		label = "RR"
		rec.RuralRoute = number
	case dictionary.RPOIndicators().Has(indicator):
		label = "RPO"
		rec.RPO = number
	default:
		if canon, ok := dictionary.POBoxIndicators().Lookup(indicator); ok {
			label = canon
		}
	}
	setUnit(rec, label, number)
	rec.Street = label + " " + number
}

// deliveryModifier takes a Canadian delivery point designation off the
// front of rest: "Station A", "Succ Centre-Ville", "RPO Main", "RR 2".
// Before a comma the whole phrase is the value; otherwise a single token.
func deliveryModifier(rec *ParsedAddress, rest string, x *exprs) string {
	var kind, value, remainder string
	if strings.Contains(rest, ",") {
		m := x.poModifier.FindStringSubmatch(rest)
		if m == nil {
			return rest
		}
		kind, value, remainder = m[1], m[2], m[3]
	} else {
		m := x.poModToken.FindStringSubmatch(rest)
		if m == nil {
			return rest
		}
		kind, value, remainder = m[1], m[2], m[3]
	}

	value = normalize.TrimPunct(value)
	switch {
	case dictionary.StationIndicators().Has(kind):
		rec.Station = value
	case dictionary.RPOIndicators().Has(kind):
		rec.RPO = value
	case dictionary.RuralRouteIndicators().Has(kind):
		rec.RuralRoute = value
	}
	return normalize.TrimPunct(remainder)
}

// boxLocality splits what follows a box into city and region.
func boxLocality(rest string, re *regionExprs) (city, state string) {
	if rest == "" || !normalize.HasLetter(rest) {
		return "", ""
	}

	parts := normalize.SplitSegments(rest)
	if len(parts) > 1 {
		last := parts[len(parts)-1]
		if m := re.regionOnly.FindStringSubmatch(last); m != nil {
			return parts[len(parts)-2], m[1]
		}
		if m := re.cityRegion.FindStringSubmatch(last); m != nil {
			return normalize.TrimPunct(m[1]), m[2]
		}
		return parts[0], ""
	}

	if m := re.cityRegion.FindStringSubmatch(rest); m != nil && normalize.HasLetter(m[1]) {
		return normalize.TrimPunct(m[1]), m[2]
	}
	if re.regionOnly.MatchString(rest) {
		return "", rest
	}
	return rest, ""
}

func countryAllowed(country string, opts Options) bool {
	return opts.Country == CountryAuto || opts.Country == country
}

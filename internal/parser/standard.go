package parser

import (
	"strings"

	"github.com/postline/internal/debug"
	"github.com/postline/internal/dictionary"
	"github.com/postline/internal/normalize"
	"github.com/postline/internal/validation"
)

// ParseAddress runs the standard cascade: segmentation and tail stripping,
// facility detection, street extraction, then postal code and country
// assignment. It returns nil unless the result has a number, a street or
// the General Delivery flag.
func ParseAddress(input string, opts Options) *ParsedAddress {
	opts = opts.resolved()
	debug.DebugHeader(opts.Debug, input)
	defer debug.DebugFooter(opts.Debug)
	defer debug.DebugTiming(opts.Debug, "ParseAddress")()

	x := patterns()
	text := normalize.LineBreaksToCommas(input)
	raw := normalize.SplitSegments(text)
	if len(raw) == 0 {
		return nil
	}
	segs := make([]string, len(raw))
	for i, seg := range raw {
		segs[i] = normalize.Spaces(seg)
	}

	t, segs := stripTail(segs, x, opts)
	if len(segs) == 0 || segs[0] == "" {
		debug.DebugOutput(opts.Debug, "nothing left after tail stripping")
		return nil
	}

	var rec ParsedAddress
	address := segs

	if opts.ExtractFacilities && facilityCandidate(segs[0], x) {
		in := FacilityInput{
			Segment:    segs[0],
			Raw:        raw[0],
			Following:  segs[1:],
			Connectors: opts.Heuristics.TitleCaseConnectors,
		}
		if m, rule, ok := detectFacility(in, opts.Heuristics.FacilityRules); ok {
			debug.DebugOutput(opts.Debug, "facility (%s): place=%q address=%q", rule, m.Place, m.Address)
			rec.Place = m.Place
			if m.KeepAsStreet {
				rec.Street = m.Address
				address = segs[1:]
			} else {
				address = recoverAddress(m.Address, segs[1:], &t, x, opts)
			}
		}
	}

	if rec.Place == "" && localityOnly(address, t, x) {
		debug.DebugOutput(opts.Debug, "only a locality before the region: no parse")
		return nil
	}

	if len(address) > 0 {
		st := runCascade(state{rec: rec, rest: strings.Join(address, ", ")}, x, opts)
		if rec.Street != "" && st.rec.Street != "" && st.rec.Number == "" {
			// The facility name is the street; extra segments only add units.
			st.rec.Street = rec.Street
			st.rec.Type = ""
		}
		rec = st.rec
	}

	applyTail(&rec, t, opts)
	if !rec.Meaningful() {
		debug.DebugOutput(opts.Debug, "no number, street or general delivery: no parse")
		return nil
	}
	return &rec
}

// facilityCandidate is false for segments that open with a house number or
// are a delivery designation.
func facilityCandidate(seg string, x *exprs) bool {
	return !x.houseStart.MatchString(seg) &&
		!x.set.GeneralDeliv.MatchString(seg) &&
		!x.set.POBox.MatchString(seg)
}

// localityOnly reports whether the text left in front of a region or postal
// code is a bare place name ("Springfield, IL 62701") rather than a street.
func localityOnly(address []string, t tail, x *exprs) bool {
	return len(address) == 1 && t.city == "" && (t.state != "" || t.zip != "") &&
		looksLikeCity(address[0], x)
}

// recoverAddress builds the segment list for the cascade from the address
// recovered out of a facility segment. An inline address that brings its own
// commas ("Name (12 Elm St, Dover, DE)") gets its own tail stripped; those
// fields only fill gaps.
func recoverAddress(inline string, following []string, t *tail, x *exprs, opts Options) []string {
	var out []string
	if inline != "" {
		parts := normalize.SplitSegments(inline)
		if len(parts) > 1 {
			inner, rest := stripTail(parts, x, opts)
			t.mergeInto(inner)
			parts = rest
		}
		out = append(out, parts...)
	}
	return append(out, following...)
}

// applyTail moves the stripped tail into the record: city and locality as
// found, the region as its abbreviation, the postal code validated, and the
// country resolved.
func applyTail(rec *ParsedAddress, t tail, opts Options) {
	rec.City = t.city
	rec.Locality = t.locality
	if t.state != "" {
		if region, ok := dictionary.LookupRegion(t.state); ok {
			rec.State = region.Abbr
		} else {
			rec.State = strings.ToUpper(strings.TrimSuffix(t.state, "."))
		}
	}
	assignPostal(rec, t.zip, opts)
	rec.Country = resolveCountry(t.country, rec.State, t.zip, opts)
}

// assignPostal validates a raw postal code. Valid codes are kept in their
// normalised form. Invalid codes are flagged with ZipValid=false and, in
// strict mode, dropped.
func assignPostal(rec *ParsedAddress, code string, opts Options) {
	if code == "" {
		return
	}
	pr := validation.ValidatePostalCode(code)
	if pr.IsValid {
		setPostal(rec, pr)
		if opts.ValidatePostalCode {
			rec.ZipValid = boolPtr(true)
		}
		return
	}

	rec.ZipValid = boolPtr(false)
	if opts.Strict {
		return
	}
	setPostal(rec, pr)
}

func setPostal(rec *ParsedAddress, pr validation.PostalResult) {
	rec.PostalType = string(pr.Type)
	if pr.Type == validation.PostalTypeZip {
		rec.Zip, rec.Plus4 = validation.SplitZip(pr.Formatted)
		return
	}
	rec.Zip = pr.Formatted
}

// resolveCountry picks the country from a country named in the text, then
// whatever the region and a valid postal code imply. A fixed country option
// restricts what the tail patterns accept, so when anything was recognised
// the option is the answer. Nothing recognised leaves it empty.
func resolveCountry(named, state, zip string, opts Options) string {
	found := named
	if found == "" {
		found = validation.InferCountry(state, zip)
	}
	if found != "" && opts.Country != CountryAuto {
		return opts.Country
	}
	return found
}

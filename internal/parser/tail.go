package parser

import (
	"strings"

	"github.com/postline/internal/debug"
	"github.com/postline/internal/dictionary"
	"github.com/postline/internal/normalize"
)

// tail is what gets peeled off the end of an address before the street
// cascade runs. Values are raw: the region is not yet an abbreviation and
// the postal code is not yet validated.
type tail struct {
	city     string
	state    string
	locality string
	zip      string
	country  string
}

// mergeInto fills the empty fields of t from o.
func (t *tail) mergeInto(o tail) {
	if t.city == "" {
		t.city = o.city
	}
	if t.state == "" {
		t.state = o.state
	}
	if t.locality == "" {
		t.locality = o.locality
	}
	if t.zip == "" {
		t.zip = o.zip
	}
	if t.country == "" {
		t.country = o.country
	}
}

// stripTail removes country, postal code, region and city from the end of
// the segment list and returns what is left for the street cascade. With
// two or more segments the first one is never consumed.
func stripTail(segs []string, x *exprs, opts Options) (tail, []string) {
	if len(segs) == 0 {
		return tail{}, nil
	}
	if len(segs) == 1 {
		t, rest := stripSingle(segs[0], tail{}, x, opts, true)
		return t, []string{rest}
	}

	var t tail
	re := x.region(opts.Country)
	segs = append([]string(nil), segs...)
	last := func() string { return segs[len(segs)-1] }
	pop := func() { segs = segs[:len(segs)-1] }

	if m := x.countryOnly.FindStringSubmatch(last()); m != nil {
		t.country, _ = dictionary.Countries().Lookup(m[1])
		pop()
	} else if m := x.countryEnd.FindStringSubmatch(last()); m != nil && normalize.HasLetter(m[1]) {
		t.country, _ = dictionary.Countries().Lookup(m[2])
		segs[len(segs)-1] = normalize.TrimPunct(m[1])
	}

	if len(segs) > 1 {
		if m := re.postalEnd.FindStringSubmatch(last()); m != nil {
			t.zip = m[2]
			if before := normalize.TrimPunct(m[1]); before == "" {
				pop()
			} else {
				segs[len(segs)-1] = before
			}
		} else if m := re.postalLoose.FindStringSubmatch(last()); m != nil {
			// Malformed codes are still peeled off; validation flags them.
			t.zip = m[2]
			segs[len(segs)-1] = normalize.TrimPunct(m[1])
		} else if re.postalLooseOnly.MatchString(last()) {
			t.zip = last()
			pop()
		}
	}

	if len(segs) > 1 {
		seg := last()
		if m := re.cityRegion.FindStringSubmatch(seg); m != nil && !normalize.HasDigit(m[1]) {
			t.city = normalize.TrimPunct(m[1])
			t.state = m[2]
			pop()
		} else if m := re.regionOnly.FindStringSubmatch(seg); m != nil {
			t.state = m[1]
			pop()
			if len(segs) > 1 && looksLikeCity(last(), x) {
				t.city = last()
				pop()
			}
		} else if looksLikeCity(seg, x) {
			t.city = seg
			pop()
		}
	}

	if t.city != "" && len(segs) > 1 && looksLikeCity(last(), x) {
		t.locality = last()
		pop()
	}

	if len(segs) == 1 && t.state == "" && t.city == "" {
		single, rest := stripSingle(segs[0], t, x, opts, false)
		t.mergeInto(single)
		segs[0] = rest
	}

	// "90210, CA": the code came first and is all that is left.
	if len(segs) == 1 && t.zip == "" && re.postalOnly.MatchString(segs[0]) {
		t.zip = segs[0]
		segs[0] = ""
	}

	debug.DebugOutput(opts.Debug, "tail: city=%q state=%q locality=%q zip=%q country=%q rest=%q",
		t.city, t.state, t.locality, t.zip, t.country, segs)
	return t, segs
}

// stripSingle peels the tail off comma-less text. A region is only taken
// when something with a letter precedes it or nothing else is left, and a
// city only when a region anchors it or the text is long enough to make a
// street-only reading unlikely. A malformed postal code is only recognised
// after a region. lookForPostal is false when the caller already searched
// for one.
func stripSingle(text string, known tail, x *exprs, opts Options, lookForPostal bool) (tail, string) {
	var t tail
	re := x.region(opts.Country)
	rest := text

	if known.country == "" {
		if m := x.countryEnd.FindStringSubmatch(rest); m != nil && normalize.HasLetter(m[1]) {
			t.country, _ = dictionary.Countries().Lookup(m[2])
			rest = normalize.TrimPunct(m[1])
		}
	}

	zipHere := false
	if lookForPostal && known.zip == "" {
		if m := re.postalEnd.FindStringSubmatch(rest); m != nil {
			// "12345 67890" keeps its first number as a house number.
			if before := normalize.TrimPunct(m[1]); before == "" || normalize.HasLetter(before) {
				t.zip = m[2]
				rest = before
				zipHere = true
			}
		} else if m := re.postalLooseStrict.FindStringSubmatch(rest); m != nil {
			t.zip = m[2]
			rest = normalize.TrimPunct(m[1])
			zipHere = true
		}
	}

	// Lower-case abbreviations are only trusted next to a postal code.
	rx := re.cityRegionStrict
	if zipHere {
		rx = re.cityRegion
	}
	if m := rx.FindStringSubmatch(rest); m != nil && normalize.HasLetter(m[1]) {
		abbr := strings.TrimSuffix(m[2], ".")
		// "123 Oak CT" is a court, not Connecticut, unless a ZIP backs it up.
		if zipHere || len(abbr) != 2 || !dictionary.StreetTypes().Has(abbr) {
			t.state = m[2]
			rest = normalize.TrimPunct(m[1])
		}
	}

	// "IL 62701": the region is all that is left.
	if t.state == "" && rest != "" {
		if m := re.regionOnly.FindStringSubmatch(rest); m != nil && (zipHere || len(m[1]) > 2 || m[1] == strings.ToUpper(m[1])) {
			t.state = m[1]
			rest = ""
		}
	}

	words := strings.Fields(rest)
	if t.state != "" || len(words) >= opts.Heuristics.MinWordsForUnanchoredCity {
		if street, city := splitCity(words, t.state != ""); city != "" {
			t.city = city
			rest = street
		}
	}
	return t, rest
}

// splitCity finds where the street ends in a run of words and returns the
// street words and the city words. The boundary is the first street type
// that follows a name word (after the house number, if there is one). A
// trailing abbreviated directional or a secondary unit stays with the
// street. Without a boundary, an anchored address gives its last word to
// the city.
func splitCity(words []string, anchored bool) (street, city string) {
	n := len(words)
	if n < 2 {
		return strings.Join(words, " "), ""
	}

	start := 0
	for i, w := range words {
		if isDigits(w) {
			start = i
			break
		}
	}

	types := dictionary.StreetTypes()
	dirs := dictionary.Directionals()
	boundary := -1
	for i := start + 1; i < n; i++ {
		if !types.Has(trimWord(words[i])) {
			continue
		}
		prev := trimWord(words[i-1])
		if isDigits(prev) || dirs.Has(prev) {
			continue
		}
		boundary = i
		break
	}

	if boundary < 0 {
		if anchored && n >= 3 && !normalize.HasDigit(words[n-1]) {
			return strings.Join(words[:n-1], " "), words[n-1]
		}
		return strings.Join(words, " "), ""
	}

	// "Lake Shore Dr Chicago": a long type word followed by a shorter one
	// means the first was part of the name.
	for boundary+2 < n {
		next := trimWord(words[boundary+1])
		if !types.Has(next) || cityPrefixes[strings.ToLower(next)] ||
			len(next) >= len(trimWord(words[boundary])) {
			break
		}
		boundary++
	}

	j := boundary + 1
	if j < n {
		if w := trimWord(words[j]); len(w) <= 2 && dirs.Has(w) {
			j++
		}
	}
	if j < n {
		switch w := words[j]; {
		case strings.HasPrefix(w, "#"):
			j++
			if w == "#" && j < n {
				j++
			}
		case dictionary.UnitTypes().Has(trimWord(w)) && j+1 < n:
			j += 2
		}
	}

	if j >= n {
		return strings.Join(words, " "), ""
	}
	cityWords := words[j:]
	if normalize.HasDigit(strings.Join(cityWords, " ")) {
		return strings.Join(words, " "), ""
	}
	return strings.Join(words[:j], " "), strings.Join(cityWords, " ")
}

// Abbreviations that start city names ("St Louis", "Ft Worth").
var cityPrefixes = map[string]bool{"st": true, "ste": true, "mt": true, "ft": true, "pt": true}

// looksLikeCity reports whether a segment can be a city: letters, no digits,
// and not recognisable as a unit, a PO box, General Delivery or a street.
func looksLikeCity(seg string, x *exprs) bool {
	switch {
	case seg == "",
		normalize.HasDigit(seg),
		!normalize.HasLetter(seg),
		x.unitStart.MatchString(seg),
		x.bareUnitOnly.MatchString(seg),
		x.set.POBox.MatchString(seg),
		x.set.GeneralDeliv.MatchString(seg),
		endsWithStreetType(seg, x):
		return false
	}
	return true
}

// Full street type words that do not end city names.
var streetWords = map[string]bool{
	"street": true, "avenue": true, "road": true, "drive": true,
	"boulevard": true, "lane": true, "court": true, "highway": true,
}

// endsWithStreetType is true for "Main St" or "Elm Street" but not for
// "Oak Park" or "Palm Springs", where the type word is part of a city name.
func endsWithStreetType(seg string, x *exprs) bool {
	words := strings.Fields(seg)
	if len(words) < 2 {
		return false
	}
	w := strings.ToLower(trimWord(words[len(words)-1]))
	if streetWords[w] {
		return true
	}
	canon, ok := dictionary.StreetTypes().Lookup(w)
	return ok && w == canon && x.abbrTypes[canon]
}

func trimWord(w string) string {
	return strings.Trim(w, ".,;")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

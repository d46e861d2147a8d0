package parser

import (
	"regexp"
	"sync"

	"github.com/postline/internal/dictionary"
	"github.com/postline/internal/pattern"
	"github.com/postline/internal/validation"
)

// regionExprs are the end-anchored tail patterns for one country mode.
type regionExprs struct {
	// postalEnd: 1 = text before, 2 = postal code
	postalEnd *regexp.Regexp
	// postalOnly matches a segment that is nothing but a postal code
	postalOnly *regexp.Regexp
	// cityRegion: 1 = text before, 2 = region. Abbreviations in any case.
	cityRegion *regexp.Regexp
	// cityRegionStrict only accepts abbreviations written in capitals
	cityRegionStrict *regexp.Regexp
	// regionOnly: 1 = region
	regionOnly *regexp.Regexp
	// postalLoose: 1 = text up to and including the region, 2 = a malformed
	// postal code after it. postalLooseStrict wants capital abbreviations.
	postalLoose       *regexp.Regexp
	postalLooseStrict *regexp.Regexp
	// postalLooseOnly matches a segment that is nothing but a malformed code
	postalLooseOnly *regexp.Regexp
}

// exprs holds every composite expression used by the parsers. All of them
// are derived from the dictionaries and built once.
type exprs struct {
	set     *pattern.Set
	regions map[string]*regionExprs

	countryEnd  *regexp.Regexp
	countryOnly *regexp.Regexp

	parenNote   *regexp.Regexp
	leadingUnit *regexp.Regexp
	numberGlued *regexp.Regexp
	number      *regexp.Regexp
	leadingDir  *regexp.Regexp
	dirOnly     *regexp.Regexp
	gridNumber  *regexp.Regexp

	ordinalFloor *regexp.Regexp
	trailingUnit *regexp.Regexp
	trailingHash *regexp.Regexp
	trailingBox  *regexp.Regexp
	bareUnit     *regexp.Regexp
	unitStart    *regexp.Regexp
	unitOnly     *regexp.Regexp
	bareUnitOnly *regexp.Regexp

	musicSquare *regexp.Regexp
	typeDir     *regexp.Regexp
	typeRoute   *regexp.Regexp
	typeOnly    *regexp.Regexp
	french      *regexp.Regexp
	dirEnd      *regexp.Regexp

	houseStart   *regexp.Regexp
	poDetect     *regexp.Regexp
	poStrict     *regexp.Regexp
	poLead       *regexp.Regexp
	poModifier   *regexp.Regexp
	poModToken   *regexp.Regexp
	informalLead *regexp.Regexp
	pureNumber   *regexp.Regexp
	// numberedStreet finds a house number followed by a typed street
	// anywhere in the text ("... 400 Bizzell St ...").
	numberedStreet *regexp.Regexp

	// abbrTypes are canonical street types that are real abbreviations
	// ("st", "ave"), as opposed to words kept whole ("park", "loop").
	abbrTypes map[string]bool
}

var (
	compiled     *exprs
	compiledOnce sync.Once
)

func patterns() *exprs {
	compiledOnce.Do(func() {
		compiled = buildExprs(pattern.Default())
	})
	return compiled
}

func buildExprs(set *pattern.Set) *exprs {
	x := &exprs{
		set:     set,
		regions: make(map[string]*regionExprs, 3),
	}
	for _, country := range []string{CountryUS, CountryCA, CountryAuto} {
		x.regions[country] = buildRegionExprs(country)
	}

	d := set.DirectionalAlt
	t := set.StreetTypeAlt
	u := set.UnitTypeAlt
	b := set.BareUnitTypeAlt
	postal := validation.PostalSource("")

	x.countryEnd = regexp.MustCompile(`(?i)^(.*?)[\s,]*(` + set.CountryAlt + `)$`)
	x.countryOnly = regexp.MustCompile(`(?i)^(` + set.CountryAlt + `)$`)

	x.parenNote = regexp.MustCompile(`\(([^()]*)\)`)
	x.leadingUnit = regexp.MustCompile(`(?i)^(?:#\s*([a-z0-9-]+)|(` + u + `)\.?\s*#?\s*([a-z0-9-]+))\s*,?\s+(\d.*)$`)
	x.numberGlued = regexp.MustCompile(`^(\d+)(NE|NW|SE|SW|N|S|E|W)\s+(.+)$`)
	x.number = regexp.MustCompile(`(?i)^(\d+(?:-\d+)?[a-z]?|\d+-[a-z])(?:\s+(\d+/\d+)|-(\d+/\d+))?(?:\s*,\s*|\s+|$)(.*)$`)
	x.leadingDir = regexp.MustCompile(`(?i)^(` + d + `)\.?\s+(.+)$`)
	x.dirOnly = regexp.MustCompile(`(?i)^(` + d + `)\.?$`)
	x.gridNumber = regexp.MustCompile(`(?i)^(\d+)\s*(` + d + `)?\.?$`)

	x.ordinalFloor = regexp.MustCompile(`(?i)^(.+?)[\s,]+(\d+)(?:st|nd|rd|th)\s+(?:floor|flr|fl)\.?$`)
	x.trailingUnit = regexp.MustCompile(`(?i)^(.+?)[\s,]+(` + u + `)\.?\s*#?\s*([a-z0-9][a-z0-9-]*)$`)
	x.trailingHash = regexp.MustCompile(`(?i)^(.+?)[\s,]*#\s*([a-z0-9][a-z0-9-]*)$`)
	x.bareUnit = regexp.MustCompile(`(?i)^(.+?)[\s,]+(` + b + `)\.?$`)
	x.trailingBox = regexp.MustCompile(`(?i)^(.+?)[\s,]+(` + set.POBoxAlt + `)\s*#?\s*(\d+[a-z]?)$`)
	x.unitStart = regexp.MustCompile(`(?i)^(?:#|(?:` + u + `)\.?\s*#?\s*(?:[a-z]|[a-z]?\d[a-z0-9-]*)$)`)
	x.unitOnly = regexp.MustCompile(`(?i)^(?:#\s*([a-z0-9-]+)|(` + u + `)\.?\s*#?\s*([a-z]|[a-z]?\d[a-z0-9-]*))$`)
	x.bareUnitOnly = regexp.MustCompile(`(?i)^(?:` + b + `)\.?$`)

	x.musicSquare = regexp.MustCompile(`(?i)^(.*\bmusic\s+(?:square|sq))\.?\s+(east|west|e|w)\.?$`)
	x.typeDir = regexp.MustCompile(`(?i)^(.+?)\s+(` + t + `)\.?\s+(` + d + `)\.?$`)
	x.typeRoute = regexp.MustCompile(`(?i)^(.*?)(` + set.RouteTypeAlt + `)\.?\s*-?\s*(\d+[a-z]?)(?:\s+(` + d + `)\.?)?$`)
	x.typeOnly = regexp.MustCompile(`(?i)^(.+?)\s+(` + t + `)\.?$`)
	x.french = regexp.MustCompile(`(?i)^(` + set.FrenchTypeAlt + `)\.?\s+(.+?)(?:\s+(` + d + `)\.?)?$`)
	x.dirEnd = regexp.MustCompile(`(?i)^(.+?)\s+(` + d + `)\.?$`)

	x.houseStart = regexp.MustCompile(`(?i)^(?:#?\s*\d|[a-z]\d)`)

	box := set.POBoxAlt + `|` + set.RuralRouteAlt + `|` + set.RPOAlt
	x.poDetect = regexp.MustCompile(`(?i)^(?:[^\d,]+,\s*)?(?:` + box + `)\s*#?\s*\d`)
	x.poStrict = regexp.MustCompile(`(?i)^(` + set.POBoxAlt + `)\s*#?\s*(\d+[a-z]?)\s*,\s*([^,]+?)\s*,\s*([a-z]{2})\.?(?:\s+(` + postal + `))?\s*$`)
	x.poLead = regexp.MustCompile(`(?i)^(?:(.*?)[\s,]+)??(` + box + `)\s*#?\s*(\d+[a-z]?)\b[\s,]*(.*)$`)
	x.poModifier = regexp.MustCompile(`(?i)^(` + set.StationAlt + `|` + set.RPOAlt + `|` + set.RuralRouteAlt + `)\.?\s*#?\s*([^,]+?)\s*(?:,\s*(.*))?$`)
	x.poModToken = regexp.MustCompile(`(?i)^(` + set.StationAlt + `|` + set.RPOAlt + `|` + set.RuralRouteAlt + `)\.?\s*#?\s*(\S+)\s*(.*)$`)
	x.informalLead = regexp.MustCompile(`^(\d+[A-Za-z]?)\s+(.+)$`)
	x.pureNumber = regexp.MustCompile(`^\d+\s`)
	x.numberedStreet = regexp.MustCompile(`(?i)(?:^|[\s,])\d+[a-z]?\s+[^,]*?(?:` + t + `)\.?(?:[\s,]|$)`)
	x.abbrTypes = abbreviatedTypes(dictionary.StreetTypes())
	return x
}

func buildRegionExprs(country string) *regionExprs {
	names := pattern.Alternation(dictionary.RegionNames(country))
	abbrs := pattern.Alternation(dictionary.RegionAbbreviations(country))
	upper := pattern.UpperAlternation(dictionary.RegionAbbreviations(country))

	postal := `(?:` + validation.PostalSource(country) + `)`
	loose := `(?:` + validation.PostalLikeSource(country) + `)`
	if country == CountryAuto {
		postal = `(?:` + validation.PostalSource("") + `)`
		loose = `(?:` + validation.PostalLikeSource("") + `)`
	}

	return &regionExprs{
		postalEnd:        regexp.MustCompile(`(?i)^(.*?)[\s,]*\b(` + postal + `)$`),
		postalOnly:       regexp.MustCompile(`(?i)^(` + postal + `)$`),
		cityRegion:       regexp.MustCompile(`(?i)^(.+?)[\s,]+(` + names + `|` + abbrs + `)\.?$`),
		cityRegionStrict: regexp.MustCompile(`^(.+?)[\s,]+((?i:` + names + `)|` + upper + `)\.?$`),
		regionOnly:       regexp.MustCompile(`(?i)^(` + names + `|` + abbrs + `)\.?$`),
		postalLoose: regexp.MustCompile(
			`(?i)^((?:.*?[\s,])?(?:` + names + `|` + abbrs + `)\.?)[\s,]+(` + loose + `)$`),
		postalLooseStrict: regexp.MustCompile(
			`^((?:.*?[\s,])?(?:(?i:` + names + `)|` + upper + `)\.?)[\s,]+((?i:` + loose + `))$`),
		postalLooseOnly: regexp.MustCompile(`(?i)^(` + loose + `)$`),
	}
}

func (x *exprs) region(country string) *regionExprs {
	if r, ok := x.regions[country]; ok {
		return r
	}
	return x.regions[CountryAuto]
}

// abbreviatedTypes returns the canonical forms that are at least two letters
// shorter than some variant mapping to them.
func abbreviatedTypes(d dictionary.Dict) map[string]bool {
	out := make(map[string]bool)
	for _, key := range d.Keys() {
		canon, _ := d.Lookup(key)
		if len(key) >= len(canon)+2 {
			out[canon] = true
		}
	}
	return out
}

package dictionary

import "strings"

// Region is a resolved state or province.
type Region struct {
	Abbr    string
	Country string
}

var (
	usStateAbbrs     = abbreviations(usStates, nil)
	caProvinceAbbrs  = abbreviations(caProvinces, caProvinceAliases)
	usStateNames     = names(usStates)
	caProvinceNames  = names(caProvinces)
	allRegionNames   = Merge(usStateNames, caProvinceNames)
	allRegionAbbrs   = Merge(usStateAbbrs, caProvinceAbbrs)
	allRegionLookups = Merge(usStates, caProvinces, usStateAbbrs, caProvinceAbbrs)
)

// abbreviations maps every canonical abbreviation (and any alias) to itself.
func abbreviations(d Dict, aliases map[string]string) Dict {
	m := make(map[string]string)
	for _, abbr := range d.Values() {
		m[strings.ToLower(abbr)] = abbr
	}
	for alias, abbr := range aliases {
		m[alias] = abbr
	}
	return New(m)
}

// names keeps the spelled-out entries; short forms such as "Ont" stay in as
// they are unambiguous, two-letter keys never appear in the name tables.
func names(d Dict) Dict {
	return d.Filter(func(key, _ string) bool { return len(key) > 2 })
}

// RegionNames returns spelled-out state/province names for country, which is
// "US", "CA" or anything else for both.
func RegionNames(country string) Dict {
	switch strings.ToUpper(country) {
	case CountryUS:
		return usStateNames
	case CountryCA:
		return caProvinceNames
	}
	return allRegionNames
}

// RegionAbbreviations returns the postal abbreviations for country.
func RegionAbbreviations(country string) Dict {
	switch strings.ToUpper(country) {
	case CountryUS:
		return usStateAbbrs
	case CountryCA:
		return caProvinceAbbrs
	}
	return allRegionAbbrs
}

// LookupRegion resolves a name or abbreviation to its postal abbreviation and
// country. Abbreviations shared by nothing else resolve unambiguously; the
// tables have no overlap between the two countries.
func LookupRegion(s string) (Region, bool) {
	abbr, ok := allRegionLookups.Lookup(s)
	if !ok {
		return Region{}, false
	}
	if caProvinceAbbrs.Has(abbr) {
		return Region{Abbr: abbr, Country: CountryCA}, true
	}
	return Region{Abbr: abbr, Country: CountryUS}, true
}

package pattern

import (
	"regexp"
	"sync"

	"github.com/postline/internal/dictionary"
)

// Set is the process-wide collection of compiled dictionary patterns. It is
// read-only after construction.
type Set struct {
	Directional   *regexp.Regexp
	StreetType    *regexp.Regexp
	RegionName    *regexp.Regexp
	POBox         *regexp.Regexp // indicator followed by a box number
	Connector     *regexp.Regexp // intersection connector with surrounding space
	GeneralDeliv  *regexp.Regexp
	FacilityWord  *regexp.Regexp
	RegionAbbrCap *regexp.Regexp // upper-case abbreviations only

	// Uncompiled sources for composition by the parsers.
	DirectionalAlt  string
	StreetTypeAlt   string
	RouteTypeAlt    string
	FrenchTypeAlt   string
	UnitTypeAlt     string
	BareUnitTypeAlt string
	POBoxAlt        string
	RuralRouteAlt   string
	RPOAlt          string
	StationAlt      string
	CountryAlt      string
	GeneralDelivAlt string
}

var (
	defaultSet  *Set
	defaultOnce sync.Once
)

// Default returns the Set built from the static dictionaries. It is built
// on first use and shared afterwards.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = NewSet()
	})
	return defaultSet
}

// NewSet compiles a fresh Set. Building is pure, so two Sets are equivalent.
func NewSet() *Set {
	s := &Set{
		DirectionalAlt:  Alternation(dictionary.Directionals()),
		StreetTypeAlt:   Alternation(dictionary.StreetTypes()),
		RouteTypeAlt:    Alternation(dictionary.RouteTypes()),
		FrenchTypeAlt:   Alternation(dictionary.FrenchStreetTypes()),
		UnitTypeAlt:     Alternation(dictionary.UnitTypes()),
		BareUnitTypeAlt: Alternation(dictionary.BareUnitTypes()),
		POBoxAlt:        Alternation(dictionary.POBoxIndicators()),
		RuralRouteAlt:   Alternation(dictionary.RuralRouteIndicators()),
		RPOAlt:          Alternation(dictionary.RPOIndicators()),
		StationAlt:      Alternation(dictionary.StationIndicators()),
		CountryAlt:      Alternation(dictionary.Countries()),
		GeneralDelivAlt: Alternation(dictionary.GeneralDelivery()),
	}

	s.Directional = BuildAlternation(dictionary.Directionals(), true)
	s.StreetType = BuildAlternation(dictionary.StreetTypes(), true)
	s.RegionName = BuildAlternation(dictionary.RegionNames(""), true)
	s.POBox = regexp.MustCompile(`(?i)(` + s.POBoxAlt + `)\s*#?\s*(\d+[a-z]?)\b`)
	s.Connector = regexp.MustCompile(`(?i)\s*(` + Alternation(dictionary.Connectors()) + `)\s*`)
	s.GeneralDeliv = regexp.MustCompile(`(?i)(` + s.GeneralDelivAlt + `)`)
	s.FacilityWord = BuildAlternation(dictionary.FacilityKeywords(), true)
	s.RegionAbbrCap = regexp.MustCompile(`(` + UpperAlternation(dictionary.RegionAbbreviations("")) + `)`)
	return s
}

package parser

import (
	"strings"

	"github.com/postline/internal/debug"
	"github.com/postline/internal/dictionary"
	"github.com/postline/internal/normalize"
)

// state is threaded through the extraction cascade. Each step reads rest,
// moves what it recognises into rec and returns the shortened rest. A step
// that sets done ends the cascade; there is no backtracking.
type state struct {
	rec  ParsedAddress
	rest string
	done bool
}

type stepFunc func(st state, x *exprs, opts Options) state

type step struct {
	name string
	run  stepFunc
}

// cascade is the fixed order of the street extraction steps.
var cascade = []step{
	{"parenthetical", stepParenthetical},
	{"leading unit", stepLeadingUnit},
	{"number", stepNumber},
	{"unit only", stepUnitOnly},
	{"leading directional", stepLeadingDirectional},
	{"grid", stepGrid},
	{"trailing unit", stepTrailingUnit},
	{"bare unit", stepBareUnit},
	{"music square", stepMusicSquare},
	{"general delivery", stepGeneralDelivery},
	{"type and directional", stepTypeDirectional},
	{"route", stepRoute},
	{"type", stepType},
	{"french type", stepFrenchType},
	{"fallback", stepFallback},
}

func runCascade(st state, x *exprs, opts Options) state {
	for _, s := range cascade {
		if st.done {
			break
		}
		before := st.rest
		st = s.run(st, x, opts)
		if st.rest != before || st.done {
			debug.DebugOutput(opts.Debug, "step %-20s %q -> %q", s.name, before, st.rest)
		}
	}
	return st
}

func stepParenthetical(st state, x *exprs, opts Options) state {
	if !opts.ParseParenthetical {
		return st
	}
	loc := x.parenNote.FindStringSubmatchIndex(st.rest)
	if loc == nil {
		return st
	}
	if note := strings.TrimSpace(st.rest[loc[2]:loc[3]]); note != "" {
		st.rec.Secondary = note
	}
	st.rest = normalize.Spaces(st.rest[:loc[0]] + " " + st.rest[loc[1]:])
	st.rest = strings.ReplaceAll(st.rest, " ,", ",")
	return st
}

// "#42 233 S Wacker Dr", "Apt 5, 12 Elm St"
func stepLeadingUnit(st state, x *exprs, _ Options) state {
	m := x.leadingUnit.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	if m[1] != "" {
		setUnit(&st.rec, "#", m[1])
	} else {
		setUnit(&st.rec, unitType(m[2]), m[3])
	}
	st.rest = m[4]
	return st
}

func stepNumber(st state, x *exprs, _ Options) state {
	if m := x.numberGlued.FindStringSubmatch(st.rest); m != nil && !isTypeOnly(m[3]) {
		st.rec.Number = m[1]
		st.rec.Prefix = m[2]
		st.rest = m[3]
		return st
	}
	m := x.number.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	st.rec.Number = strings.ToUpper(m[1])
	st.rec.Fraction = m[2] + m[3]
	st.rest = strings.TrimSpace(m[4])
	return st
}

// "Suite 100" or "123, Apt 4": nothing but a unit is left, so there is no
// street to find.
func stepUnitOnly(st state, x *exprs, _ Options) state {
	if st.rec.SecUnitType != "" {
		return st
	}
	m := x.unitOnly.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	if m[1] != "" {
		setUnit(&st.rec, "#", m[1])
	} else {
		setUnit(&st.rec, unitType(m[2]), m[3])
	}
	st.rest = ""
	st.done = true
	return st
}

// "N Main St" but not "North St", where the directional is the name.
func stepLeadingDirectional(st state, x *exprs, _ Options) state {
	if st.rec.Prefix != "" {
		return st
	}
	m := x.leadingDir.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	words := strings.Fields(m[2])
	if len(words) == 0 {
		return st
	}
	if dictionary.StreetTypes().Has(words[0]) &&
		(len(words) == 1 || (len(words) == 2 && dictionary.Directionals().Has(words[1]))) {
		return st
	}
	st.rec.Prefix = directional(m[1])
	st.rest = m[2]
	return st
}

// "2200 W" and "123 S 200 W": grid addresses with no street name.
func stepGrid(st state, x *exprs, _ Options) state {
	if st.rec.Number == "" {
		return st
	}
	if x.dirOnly.MatchString(st.rest) && st.rec.Prefix == "" {
		st.rec.Street = normalize.TrimPunct(strings.TrimSuffix(st.rest, "."))
		st.rest = ""
		st.done = true
		return st
	}
	if m := x.gridNumber.FindStringSubmatch(st.rest); m != nil {
		st.rec.Street = m[1]
		if m[2] != "" {
			st.rec.Suffix = directional(m[2])
		}
		st.rest = ""
		st.done = true
	}
	return st
}

func stepTrailingUnit(st state, x *exprs, _ Options) state {
	if st.rec.SecUnitType != "" {
		return st
	}
	if m := x.ordinalFloor.FindStringSubmatch(st.rest); m != nil {
		setUnit(&st.rec, "Fl", m[2])
		st.rest = normalize.TrimPunct(m[1])
		return st
	}
	if m := x.trailingBox.FindStringSubmatch(st.rest); m != nil {
		label, _ := dictionary.POBoxIndicators().Lookup(m[2])
		setUnit(&st.rec, label, m[3])
		st.rest = normalize.TrimPunct(m[1])
		return st
	}
	if m := x.trailingUnit.FindStringSubmatch(st.rest); m != nil {
		value := m[3]
		// "Old Mill Stop Rd": the word after the unit type is a street type.
		if normalize.HasDigit(value) || !dictionary.StreetTypes().Has(value) {
			setUnit(&st.rec, unitType(m[2]), value)
			st.rest = normalize.TrimPunct(m[1])
			return st
		}
	}
	if m := x.trailingHash.FindStringSubmatch(st.rest); m != nil && normalize.HasLetter(m[1]) {
		setUnit(&st.rec, "#", m[2])
		st.rest = normalize.TrimPunct(m[1])
	}
	return st
}

// "123 Main St Rear"; the remaining text must still end like a street.
func stepBareUnit(st state, x *exprs, _ Options) state {
	if st.rec.SecUnitType != "" {
		return st
	}
	m := x.bareUnit.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	before := normalize.TrimPunct(m[1])
	if !x.typeOnly.MatchString(before) && !x.typeDir.MatchString(before) && !x.dirEnd.MatchString(before) {
		return st
	}
	canon, _ := dictionary.BareUnitTypes().Lookup(m[2])
	st.rec.SecUnitType = canon
	st.rest = before
	return st
}

func stepMusicSquare(st state, x *exprs, _ Options) state {
	m := x.musicSquare.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	st.rec.Street = "Music Square"
	if name := normalize.TrimPunct(m[1]); !strings.EqualFold(name, "music square") && !strings.EqualFold(name, "music sq") {
		st.rec.Street = name
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "e") {
		st.rec.Type = "East"
	} else {
		st.rec.Type = "West"
	}
	st.rest = ""
	st.done = true
	return st
}

func stepGeneralDelivery(st state, x *exprs, _ Options) state {
	if !x.set.GeneralDeliv.MatchString(st.rest) {
		return st
	}
	st.rec.GeneralDelivery = true
	st.rec.Street = "General Delivery"
	st.rec.Number = ""
	st.rec.Fraction = ""
	st.rec.Prefix = ""
	st.rec.Type = ""
	st.rec.Suffix = ""
	st.rest = ""
	st.done = true
	return st
}

// "Main St NW"
func stepTypeDirectional(st state, x *exprs, _ Options) state {
	m := x.typeDir.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	name := cleanStreet(m[1])
	if name == "" {
		return st
	}
	st.rec.Street = name
	st.rec.Type = streetType(m[2])
	st.rec.Suffix = directional(m[3])
	st.rest = ""
	st.done = true
	return st
}

// "Highway 7", "County Road 12 N": the route number stays in the street
// and the house number, if any, is left alone.
func stepRoute(st state, x *exprs, _ Options) state {
	loc := x.typeRoute.FindStringSubmatchIndex(st.rest)
	if loc == nil {
		return st
	}
	text := st.rest
	if loc[8] >= 0 {
		st.rec.Suffix = directional(text[loc[8]:loc[9]])
		text = text[:loc[8]]
	}
	st.rec.Street = cleanStreet(text)
	st.rest = ""
	st.done = true
	return st
}

// "Main Street"; longest type first, so never "Main Stree" + "t".
func stepType(st state, x *exprs, _ Options) state {
	m := x.typeOnly.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	name := cleanStreet(m[1])
	if name == "" {
		return st
	}
	st.rec.Street = name
	st.rec.Type = streetType(m[2])
	st.rest = ""
	st.done = true
	return st
}

// "Rue Sainte-Catherine Ouest"
func stepFrenchType(st state, x *exprs, _ Options) state {
	m := x.french.FindStringSubmatch(st.rest)
	if m == nil {
		return st
	}
	name := cleanStreet(m[2])
	if name == "" {
		return st
	}
	canon, _ := dictionary.FrenchStreetTypes().Lookup(m[1])
	st.rec.Type = canon
	st.rec.Street = name
	if m[3] != "" {
		st.rec.Suffix = directional(m[3])
	}
	st.rest = ""
	st.done = true
	return st
}

func stepFallback(st state, x *exprs, _ Options) state {
	if m := x.dirEnd.FindStringSubmatch(st.rest); m != nil {
		if name := cleanStreet(m[1]); name != "" {
			st.rec.Street = name
			st.rec.Suffix = directional(m[2])
			st.rest = ""
			st.done = true
			return st
		}
	}
	st.rec.Street = cleanStreet(st.rest)
	st.rest = ""
	st.done = true
	return st
}

func setUnit(rec *ParsedAddress, unitType, num string) {
	rec.SecUnitType = unitType
	rec.SecUnitNum = strings.ToUpper(num)
	rec.Unit = rec.SecUnitNum
}

func unitType(s string) string {
	if canon, ok := dictionary.UnitTypes().Lookup(s); ok {
		return canon
	}
	return s
}

func streetType(s string) string {
	if canon, ok := dictionary.StreetTypes().Lookup(s); ok {
		return canon
	}
	return strings.ToLower(s)
}

func directional(s string) string {
	if canon, ok := dictionary.Directionals().Lookup(s); ok {
		return canon
	}
	return strings.ToUpper(s)
}

// isTypeOnly reports whether s is a single street type word ("St").
func isTypeOnly(s string) bool {
	words := strings.Fields(s)
	return len(words) == 1 && dictionary.StreetTypes().Has(words[0])
}

func cleanStreet(s string) string {
	return normalize.TrimPunct(normalize.Spaces(strings.ReplaceAll(s, ",", " ")))
}

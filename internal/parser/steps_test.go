package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func runStep(fn stepFunc, rest string) state {
	return fn(state{rest: rest}, patterns(), DefaultOptions().resolved())
}

func TestStepNumber(t *testing.T) {
	tests := []struct {
		rest                     string
		number, fraction, prefix string
		remaining                string
	}{
		{"123 Main St", "123", "", "", "Main St"},
		{"123 1/2 Main St", "123", "1/2", "", "Main St"},
		{"123-1/2 Main St", "123", "1/2", "", "Main St"},
		{"123A Main St", "123A", "", "", "Main St"},
		{"12-14 Elm Ave", "12-14", "", "", "Elm Ave"},
		{"48S Main St", "48", "", "S", "Main St"},
		{"1st Ave", "", "", "", "1st Ave"},
		{"Main St", "", "", "", "Main St"},
	}

	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			st := runStep(stepNumber, tt.rest)
			assert.Equal(t, tt.number, st.rec.Number)
			assert.Equal(t, tt.fraction, st.rec.Fraction)
			assert.Equal(t, tt.prefix, st.rec.Prefix)
			assert.Equal(t, tt.remaining, st.rest)
		})
	}
}

func TestStepLeadingUnit(t *testing.T) {
	st := runStep(stepLeadingUnit, "#42 233 S Wacker Dr")
	assert.Equal(t, "#", st.rec.SecUnitType)
	assert.Equal(t, "42", st.rec.SecUnitNum)
	assert.Equal(t, "233 S Wacker Dr", st.rest)

	st = runStep(stepLeadingUnit, "Suite 200, 100 Main St")
	assert.Equal(t, "Ste", st.rec.SecUnitType)
	assert.Equal(t, "200", st.rec.SecUnitNum)
	assert.Equal(t, "100 Main St", st.rest)

	st = runStep(stepLeadingUnit, "Lot Rd")
	assert.Empty(t, st.rec.SecUnitType)
	assert.Equal(t, "Lot Rd", st.rest)
}

func TestStepUnitOnly(t *testing.T) {
	tests := []struct {
		rest, unitType, unitNum, remaining string
		done                                bool
	}{
		{"Suite 100", "Ste", "100", "", true},
		{"Apt 4B", "Apt", "4B", "", true},
		{"#5", "#", "5", "", true},
		{"Unit A", "Unit", "A", "", true},
		{"Ste Catherine", "", "", "Ste Catherine", false},
		{"Main St", "", "", "Main St", false},
		{"Apt 4 Main St", "", "", "Apt 4 Main St", false},
	}
	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			st := runStep(stepUnitOnly, tt.rest)
			assert.Equal(t, tt.unitType, st.rec.SecUnitType)
			assert.Equal(t, tt.unitNum, st.rec.SecUnitNum)
			assert.Equal(t, tt.remaining, st.rest)
			assert.Equal(t, tt.done, st.done)
			assert.Empty(t, st.rec.Street)
		})
	}
}

func TestStepLeadingDirectional(t *testing.T) {
	tests := []struct {
		rest, prefix, remaining string
	}{
		{"N Main St", "N", "Main St"},
		{"North Main St", "N", "Main St"},
		{"North St", "", "North St"},
		{"E St NW", "", "E St NW"},
		{"Main St", "", "Main St"},
	}
	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			st := runStep(stepLeadingDirectional, tt.rest)
			assert.Equal(t, tt.prefix, st.rec.Prefix)
			assert.Equal(t, tt.remaining, st.rest)
		})
	}
}

func TestStepTrailingUnit(t *testing.T) {
	tests := []struct {
		rest, unitType, unitNum, remaining string
	}{
		{"Main St Apt 4B", "Apt", "4B", "Main St"},
		{"Main St, Suite 200", "Ste", "200", "Main St"},
		{"Main St Lot 5", "Lot", "5", "Main St"},
		{"Main St #12", "#", "12", "Main St"},
		{"Main St 3rd Floor", "Fl", "3", "Main St"},
		{"Main St PO Box 9", "PO Box", "9", "Main St"},
		{"Old Mill Stop Rd", "", "", "Old Mill Stop Rd"},
		{"Main St", "", "", "Main St"},
	}
	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			st := runStep(stepTrailingUnit, tt.rest)
			assert.Equal(t, tt.unitType, st.rec.SecUnitType)
			assert.Equal(t, tt.unitNum, st.rec.SecUnitNum)
			assert.Equal(t, tt.unitNum, st.rec.Unit)
			assert.Equal(t, tt.remaining, st.rest)
		})
	}
}

func TestStepBareUnit(t *testing.T) {
	st := runStep(stepBareUnit, "Main St Rear")
	assert.Equal(t, "Rear", st.rec.SecUnitType)
	assert.Equal(t, "Main St", st.rest)

	// "Ocean" is not a street on its own, so "Front" stays in the name.
	st = runStep(stepBareUnit, "Ocean Front")
	assert.Empty(t, st.rec.SecUnitType)
	assert.Equal(t, "Ocean Front", st.rest)
}

func TestStepGeneralDelivery(t *testing.T) {
	st := state{rec: ParsedAddress{Number: "12", Type: "st"}, rest: "General Delivery"}
	st = stepGeneralDelivery(st, patterns(), DefaultOptions())
	assert.True(t, st.done)
	assert.True(t, st.rec.GeneralDelivery)
	assert.Equal(t, "General Delivery", st.rec.Street)
	assert.Empty(t, st.rec.Number)
	assert.Empty(t, st.rec.Type)
}

func TestStepRoute(t *testing.T) {
	st := state{rec: ParsedAddress{Number: "4500"}, rest: "County Road 12 N"}
	st = stepRoute(st, patterns(), DefaultOptions())
	assert.True(t, st.done)
	assert.Equal(t, "4500", st.rec.Number)
	assert.Equal(t, "County Road 12", st.rec.Street)
	assert.Equal(t, "N", st.rec.Suffix)
	assert.Empty(t, st.rec.Type)
}

func TestStepStreetShapes(t *testing.T) {
	tests := []struct {
		name                string
		fn                  stepFunc
		rest                string
		street, typ, suffix string
	}{
		{"type and directional", stepTypeDirectional, "Main St NW", "Main", "st", "NW"},
		{"type", stepType, "Lake Shore Drive", "Lake Shore", "dr", ""},
		{"type with period", stepType, "Elm Ave.", "Elm", "ave", ""},
		{"french prefix type", stepFrenchType, "Boulevard René-Lévesque Est", "René-Lévesque", "boul", "E"},
		{"french without directional", stepFrenchType, "Rue Main", "Main", "rue", ""},
		{"fallback directional", stepFallback, "Broadway E", "Broadway", "", "E"},
		{"fallback name", stepFallback, "Broadway", "Broadway", "", ""},
		{"music square", stepMusicSquare, "Music Sq W", "Music Square", "West", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := runStep(tt.fn, tt.rest)
			assert.True(t, st.done)
			assert.Equal(t, tt.street, st.rec.Street)
			assert.Equal(t, tt.typ, st.rec.Type)
			assert.Equal(t, tt.suffix, st.rec.Suffix)
		})
	}
}

func TestStepParenthetical(t *testing.T) {
	st := runStep(stepParenthetical, "123 Main St (Rear Entrance)")
	assert.Equal(t, "Rear Entrance", st.rec.Secondary)
	assert.Equal(t, "123 Main St", st.rest)

	opts := DefaultOptions().resolved()
	opts.ParseParenthetical = false
	st = stepParenthetical(state{rest: "123 Main St (Rear)"}, patterns(), opts)
	assert.Empty(t, st.rec.Secondary)
	assert.Equal(t, "123 Main St (Rear)", st.rest)
}

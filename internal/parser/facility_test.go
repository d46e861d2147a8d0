package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFacility(t *testing.T) {
	connectors := DefaultHeuristics().TitleCaseConnectors

	tests := []struct {
		name      string
		in        FacilityInput
		wantRule  string
		wantMatch FacilityMatch
		wantOK    bool
	}{
		{
			name:      "inline parenthetical address",
			in:        FacilityInput{Segment: "Union Station (800 N Alameda St)"},
			wantRule:  "parenthetical",
			wantMatch: FacilityMatch{Place: "Union Station", Address: "800 N Alameda St"},
			wantOK:    true,
		},
		{
			name:      "colon delimiter",
			in:        FacilityInput{Segment: "City Hall: 100 Main St"},
			wantRule:  "delimiter",
			wantMatch: FacilityMatch{Place: "City Hall", Address: "100 Main St"},
			wantOK:    true,
		},
		{
			name:      "dash delimiter",
			in:        FacilityInput{Segment: "City Hall - 100 Main St"},
			wantRule:  "delimiter",
			wantMatch: FacilityMatch{Place: "City Hall", Address: "100 Main St"},
			wantOK:    true,
		},
		{
			name:      "island name doubles as street",
			in:        FacilityInput{Segment: "Bowen Island", Raw: "Bowen Island"},
			wantRule:  "island",
			wantMatch: FacilityMatch{Place: "Bowen Island", Address: "Bowen Island", KeepAsStreet: true},
			wantOK:    true,
		},
		{
			name:      "keyword with inline address",
			in:        FacilityInput{Segment: "Memorial Hospital 123 Main St", Connectors: connectors},
			wantRule:  "keyword",
			wantMatch: FacilityMatch{Place: "Memorial Hospital", Address: "123 Main St"},
			wantOK:    true,
		},
		{
			name: "keyword with address in the next segment",
			in: FacilityInput{
				Segment:    "Museum of Fine Arts",
				Following:  []string{"465 Huntington Ave"},
				Connectors: connectors,
			},
			wantRule:  "keyword",
			wantMatch: FacilityMatch{Place: "Museum of Fine Arts"},
			wantOK:    true,
		},
		{
			name:   "lower case name is not a facility",
			in:     FacilityInput{Segment: "memorial hospital 123 Main St", Connectors: connectors},
			wantOK: false,
		},
		{
			name:   "keyword without a recoverable address",
			in:     FacilityInput{Segment: "Memorial Hospital", Following: []string{"Springfield"}, Connectors: connectors},
			wantOK: false,
		},
		{
			name:   "no keyword",
			in:     FacilityInput{Segment: "Green Gables 12 Elm St", Connectors: connectors},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, rule, ok := detectFacility(tt.in, DefaultFacilityRules())
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.wantMatch, m)
		})
	}
}

func TestDetectFacility_RuleOrderAndNilRules(t *testing.T) {
	first := FacilityRule{Name: "first", Detect: func(FacilityInput) (FacilityMatch, bool) {
		return FacilityMatch{Place: "one"}, true
	}}
	second := FacilityRule{Name: "second", Detect: func(FacilityInput) (FacilityMatch, bool) {
		return FacilityMatch{Place: "two"}, true
	}}
	empty := FacilityRule{Name: "empty", Detect: func(FacilityInput) (FacilityMatch, bool) {
		return FacilityMatch{}, true
	}}

	m, rule, ok := detectFacility(FacilityInput{Segment: "x"}, []FacilityRule{{Name: "nil"}, empty, first, second})
	require.True(t, ok)
	assert.Equal(t, "first", rule)
	assert.Equal(t, "one", m.Place)

	_, _, ok = detectFacility(FacilityInput{Segment: "x"}, nil)
	assert.False(t, ok)
}

func TestParseAddress_CustomFacilityRule(t *testing.T) {
	slash := FacilityRule{
		Name: "slash",
		Detect: func(in FacilityInput) (FacilityMatch, bool) {
			place, address, ok := strings.Cut(in.Segment, " / ")
			if !ok {
				return FacilityMatch{}, false
			}
			return FacilityMatch{Place: place, Address: address}, true
		},
	}
	h := DefaultHeuristics()
	h.FacilityRules = append([]FacilityRule{slash}, h.FacilityRules...)
	opts := DefaultOptions()
	opts.Heuristics = h

	rec := ParseAddress("Gate 7 / 12 Dock Rd, Halifax, NS B3H 1A1", opts)
	require.NotNil(t, rec)
	assert.Equal(t, "Gate 7", rec.Place)
	assert.Equal(t, "12", rec.Number)
	assert.Equal(t, "Dock", rec.Street)
	assert.Equal(t, "rd", rec.Type)
	assert.Equal(t, "Halifax", rec.City)
	assert.Equal(t, "NS", rec.State)
	assert.Equal(t, "B3H 1A1", rec.Zip)
	assert.Equal(t, "CA", rec.Country)

	// The default rules leave the slash form alone.
	rec = ParseAddress("Gate 7 / 12 Dock Rd, Halifax, NS B3H 1A1", DefaultOptions())
	if rec != nil {
		assert.NotEqual(t, "Gate 7", rec.Place)
	}
}

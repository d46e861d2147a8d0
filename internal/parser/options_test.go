package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults", opts: DefaultOptions()},
		{name: "zero value", opts: Options{}},
		{name: "US", opts: Options{Country: CountryUS}},
		{name: "CA camel", opts: Options{Country: CountryCA, KeyStyle: KeyCamel}},
		{name: "unknown country", opts: Options{Country: "MX"}, wantErr: true},
		{name: "unknown key style", opts: Options{KeyStyle: "kebab"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid parse options")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOptions_Resolved(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"", CountryAuto},
		{"auto", CountryAuto},
		{"us", CountryUS},
		{" CA ", CountryCA},
		{"MX", CountryAuto},
	}
	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got := Options{Country: tt.country}.resolved()
			assert.Equal(t, tt.want, got.Country)
			require.NotNil(t, got.Heuristics)
			assert.Equal(t, DefaultMinWordsForUnanchoredCity, got.Heuristics.MinWordsForUnanchoredCity)
		})
	}
}

func TestDefaultHeuristics(t *testing.T) {
	h := DefaultHeuristics()
	assert.Equal(t, 5, h.MinWordsForUnanchoredCity)
	assert.True(t, h.TitleCaseConnectors["of"])
	assert.Equal(t, 3, h.Input.MinLength)
	assert.InDelta(t, 0.5, h.Input.MinAlnumRatio, 1e-9)

	names := make([]string, 0, len(h.FacilityRules))
	for _, r := range h.FacilityRules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"parenthetical", "delimiter", "island", "keyword"}, names)

	// Callers get their own copy of the connector set.
	h.TitleCaseConnectors["of"] = false
	assert.True(t, DefaultHeuristics().TitleCaseConnectors["of"])
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntersection(t *testing.T) {
	tests := []struct {
		input string
		want  *ParsedIntersection
	}{
		{
			input: "Main St and Oak Ave, Springfield, IL",
			want: &ParsedIntersection{
				Street1: "Main", Type1: "st", Street2: "Oak", Type2: "ave",
				City: "Springfield", State: "IL", Country: "US",
			},
		},
		{
			input: "N Main St & W Oak Ave",
			want: &ParsedIntersection{
				Prefix1: "N", Street1: "Main", Type1: "st",
				Prefix2: "W", Street2: "Oak", Type2: "ave",
			},
		},
		{
			input: "Atlantic Ave and Pine St",
			want:  &ParsedIntersection{Street1: "Atlantic", Type1: "ave", Street2: "Pine", Type2: "st"},
		},
		{
			input: "Broadway and 42nd",
			want:  &ParsedIntersection{Street1: "Broadway", Street2: "42nd"},
		},
		{input: "Main St and", want: nil},
		{input: "and Oak Ave", want: nil},
		{input: "Main St and Oak Ave and Elm St", want: nil},
		{input: "123 Main St & Oak", want: nil},
		{input: "Main St", want: nil},
		{input: "Texas A&M University, 400 Bizzell St, College Station, TX 77843", want: nil},
		{input: "Texas A&M University 400 Bizzell St College Station TX 77843", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIntersection(tt.input, DefaultOptions()))
		})
	}
}

func TestParseIntersection_TypesAlwaysSerialised(t *testing.T) {
	r := ParseIntersection("Broadway and 42nd", DefaultOptions())
	require.NotNil(t, r)

	m := r.ToMap(KeySnake)
	assert.Contains(t, m, "type1")
	assert.Contains(t, m, "type2")
	assert.Equal(t, "", m["type1"])
	assert.NotContains(t, m, "city")
}

func TestParseStreetHalf(t *testing.T) {
	x := patterns()
	tests := []struct {
		text                        string
		prefix, street, typ, suffix string
	}{
		{"Main St", "", "Main", "st", ""},
		{"N Main St", "N", "Main", "st", ""},
		{"Main St NW", "", "Main", "st", "NW"},
		{"Rue Sainte-Catherine Ouest", "", "Sainte-Catherine", "rue", "O"},
		{"Broadway E", "", "Broadway", "", "E"},
		{"Broadway", "", "Broadway", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			prefix, street, typ, suffix := parseStreetHalf(tt.text, x)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.street, street)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.suffix, suffix)
		})
	}
}

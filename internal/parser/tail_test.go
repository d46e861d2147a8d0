package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTail_Segments(t *testing.T) {
	tests := []struct {
		name string
		segs []string
		want tail
		rest []string
	}{
		{
			name: "city, region and zip",
			segs: []string{"123 Main St", "New York", "NY 10001"},
			want: tail{city: "New York", state: "NY", zip: "10001"},
			rest: []string{"123 Main St"},
		},
		{
			name: "city and region in one segment",
			segs: []string{"123 Main St", "Springfield IL 62701"},
			want: tail{city: "Springfield", state: "IL", zip: "62701"},
			rest: []string{"123 Main St"},
		},
		{
			name: "unit segment is kept",
			segs: []string{"123 Main St", "Apt 4", "Springfield", "IL"},
			want: tail{city: "Springfield", state: "IL"},
			rest: []string{"123 Main St", "Apt 4"},
		},
		{
			name: "first segment is never consumed",
			segs: []string{"Springfield", "IL"},
			want: tail{state: "IL"},
			rest: []string{"Springfield"},
		},
		{
			name: "country segment",
			segs: []string{"10 Queen St", "Toronto", "ON M5H 2N2", "Canada"},
			want: tail{city: "Toronto", state: "ON", zip: "M5H 2N2", country: "CA"},
			rest: []string{"10 Queen St"},
		},
		{
			name: "malformed zip after the region",
			segs: []string{"123 Main St", "Springfield", "IL 1234"},
			want: tail{city: "Springfield", state: "IL", zip: "1234"},
			rest: []string{"123 Main St"},
		},
		{
			name: "incomplete postal code after the province",
			segs: []string{"123 Main St", "Toronto", "ON M5V 2T"},
			want: tail{city: "Toronto", state: "ON", zip: "M5V 2T"},
			rest: []string{"123 Main St"},
		},
		{
			name: "malformed code as its own segment",
			segs: []string{"123 Main St", "Springfield", "123456"},
			want: tail{city: "Springfield", zip: "123456"},
			rest: []string{"123 Main St"},
		},
		{
			name: "leading zip with only a region after it",
			segs: []string{"90210", "CA"},
			want: tail{state: "CA", zip: "90210"},
			rest: []string{""},
		},
		{
			name: "postal only falls back to the single segment",
			segs: []string{"123 Main St Springfield IL", "62701"},
			want: tail{city: "Springfield", state: "IL", zip: "62701"},
			rest: []string{"123 Main St"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := stripTail(tt.segs, patterns(), DefaultOptions().resolved())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestStripTail_Single(t *testing.T) {
	tests := []struct {
		input string
		want  tail
		rest  string
	}{
		{"123 Main St Springfield IL 62701", tail{city: "Springfield", state: "IL", zip: "62701"}, "123 Main St"},
		{"123 Main St New York NY 10001", tail{city: "New York", state: "NY", zip: "10001"}, "123 Main St"},
		{"123 Lake Shore Dr Chicago IL 60611", tail{city: "Chicago", state: "IL", zip: "60611"}, "123 Lake Shore Dr"},
		{"100 Main St NW Washington DC", tail{city: "Washington", state: "DC"}, "100 Main St NW"},
		{"123 Oak CT", tail{}, "123 Oak CT"},
		{"123 Oak Ct Hartford CT 06103", tail{city: "Hartford", state: "CT", zip: "06103"}, "123 Oak Ct"},
		{"123 Main St Mill Valley", tail{city: "Mill Valley"}, "123 Main St"},
		{"123 Main St Springfield", tail{}, "123 Main St Springfield"},
		{"123 Main St Springfield IL 1234", tail{city: "Springfield", state: "IL", zip: "1234"}, "123 Main St"},
		{"123 Main St Springfield IL 123456", tail{city: "Springfield", state: "IL", zip: "123456"}, "123 Main St"},
		{"123 Main St 1234", tail{}, "123 Main St 1234"},
		{"12345", tail{zip: "12345"}, ""},
		{"62701-1234", tail{zip: "62701-1234"}, ""},
		{"K1A 0B1", tail{zip: "K1A 0B1"}, ""},
		{"IL 62701", tail{state: "IL", zip: "62701"}, ""},
		{"12345 67890", tail{}, "12345 67890"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest := stripTail([]string{tt.input}, patterns(), DefaultOptions().resolved())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{tt.rest}, rest)
		})
	}
}

func TestSplitCity(t *testing.T) {
	tests := []struct {
		words    string
		anchored bool
		street   string
		city     string
	}{
		{"123 Main St Springfield", true, "123 Main St", "Springfield"},
		{"123 Lake Shore Dr Chicago", true, "123 Lake Shore Dr", "Chicago"},
		{"123 Main St St Louis", true, "123 Main St", "St Louis"},
		{"123 Main St Mill Valley", false, "123 Main St", "Mill Valley"},
		{"123 Main St NW Washington", true, "123 Main St NW", "Washington"},
		{"123 Main St Apt 4 Springfield", true, "123 Main St Apt 4", "Springfield"},
		{"123 Park Ave New York", true, "123 Park Ave", "New York"},
		{"123 Main Springfield", true, "123 Main", "Springfield"},
		{"123 Main Springfield", false, "123 Main Springfield", ""},
		{"Main Springfield", true, "Main Springfield", ""},
	}
	for _, tt := range tests {
		t.Run(tt.words, func(t *testing.T) {
			street, city := splitCity(strings.Fields(tt.words), tt.anchored)
			assert.Equal(t, tt.street, street)
			assert.Equal(t, tt.city, city)
		})
	}
}

func TestLooksLikeCity(t *testing.T) {
	x := patterns()
	for seg, want := range map[string]bool{
		"Springfield":  true,
		"Oak Park":     true,
		"Palm Springs": true,
		"Key West":     true,
		"St Louis":     true,
		"Main St":      false,
		"Elm Street":   false,
		"Apt B":        false,
		"Lobby":        false,
		"12 Main":      false,
		"PO Box 5":     false,
		"":             false,
	} {
		assert.Equal(t, want, looksLikeCity(seg, x), "segment %q", seg)
	}
}

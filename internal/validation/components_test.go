package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasValidAddressComponents(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123 Main St", true},
		{"Main St", true},
		{"Springfield, IL", true},
		{"North Bend", true},
		{"Main and Oak", true},
		{"PO Box 12", true},
		{"General Delivery", true},
		{"K1A 0B1", true},
		{"Texas", true},
		{"Toronto ON", true},
		{"", false},
		{"ab", false},
		{"!!!???", false},
		{"@@@a", false},
		{"hello there", false},
		{"e ne", false},
		{"turn on the lights", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, HasValidAddressComponents(tt.input))
		})
	}
}

func TestInputThresholds_Check(t *testing.T) {
	strict := InputThresholds{MinLength: 20, MinAlnumRatio: 0.9}
	assert.False(t, strict.Check("123 Main St"))
	assert.False(t, strict.Check("123 Main St ----------"))
	assert.True(t, strict.Check("123 Main Street Springfield"))

	lax := InputThresholds{}
	assert.True(t, lax.Check("1"))
	assert.False(t, lax.Check("zz"))
}

func TestInferCountry(t *testing.T) {
	tests := []struct {
		state, zip string
		want       string
	}{
		{"IL", "", "US"},
		{"Ontario", "", "CA"},
		{"", "K1A 0B1", "CA"},
		{"", "62701", "US"},
		{"ON", "12345", "US"},
		{"XX", "1234", ""},
		{"IL", "D1A 1A1", "US"},
		{"IL", "00000", "US"},
		{"", "D1A 1A1", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.state+"/"+tt.zip, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCountry(tt.state, tt.zip))
		})
	}
}

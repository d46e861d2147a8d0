package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMap_KeyStyles(t *testing.T) {
	rec := &ParsedAddress{
		Number:      "123",
		Street:      "Main",
		Type:        "st",
		SecUnitType: "Apt",
		SecUnitNum:  "4",
		Unit:        "4",
		Zip:         "62701",
		Plus4:       "1234",
		ZipValid:    boolPtr(true),
		RuralRoute:  "2",
	}

	snake := rec.ToMap(KeySnake)
	assert.Equal(t, map[string]any{
		"number": "123", "street": "Main", "type": "st",
		"sec_unit_type": "Apt", "sec_unit_num": "4", "unit": "4",
		"zip": "62701", "plus4": "1234", "zip_valid": true, "rr": "2",
	}, snake)

	camel := rec.ToMap(KeyCamel)
	assert.Equal(t, map[string]any{
		"number": "123", "street": "Main", "type": "st",
		"secUnitType": "Apt", "secUnitNum": "4", "unit": "4",
		"zip": "62701", "plus4": "1234", "zipValid": true, "rr": "2",
	}, camel)

	// Camel keys map back to the snake keys with the same values.
	assert.Equal(t, snake, RenameKeys(camel, CamelToSnake))
}

func TestToMap_UnknownStyleIsSnake(t *testing.T) {
	rec := &ParsedAddress{SecUnitType: "Ste"}
	assert.Equal(t, map[string]any{"sec_unit_type": "Ste"}, rec.ToMap(""))
}

func TestToMap_Nil(t *testing.T) {
	var rec *ParsedAddress
	var inter *ParsedIntersection
	assert.Nil(t, rec.ToMap(KeySnake))
	assert.Nil(t, inter.ToMap(KeyCamel))
}

func TestToMap_ZipValidFalseIsKept(t *testing.T) {
	rec := &ParsedAddress{Zip: "1234", ZipValid: boolPtr(false)}
	assert.Equal(t, false, rec.ToMap(KeySnake)["zip_valid"])
	assert.NotContains(t, (&ParsedAddress{Zip: "12345"}).ToMap(KeySnake), "zip_valid")
}

func TestKeyConversion(t *testing.T) {
	tests := []struct {
		snake, camel string
	}{
		{"sec_unit_type", "secUnitType"},
		{"general_delivery", "generalDelivery"},
		{"postal_type", "postalType"},
		{"plus4", "plus4"},
		{"street1", "street1"},
		{"rr", "rr"},
	}
	for _, tt := range tests {
		t.Run(tt.snake, func(t *testing.T) {
			assert.Equal(t, tt.camel, SnakeToCamel(tt.snake))
			assert.Equal(t, tt.snake, CamelToSnake(tt.camel))
		})
	}
}

package parser

import (
	"encoding/json"
	"strings"
	"unicode"
)

// KeyStyle selects the naming convention of ToMap keys.
type KeyStyle string

const (
	KeySnake KeyStyle = "snake"
	KeyCamel KeyStyle = "camel"
)

// ToMap returns the populated fields keyed in the requested style. Values
// are never altered; unset optional fields are absent.
func (a *ParsedAddress) ToMap(style KeyStyle) map[string]any {
	if a == nil {
		return nil
	}
	return restyle(fieldMap(a), style)
}

// ToMap returns the populated fields keyed in the requested style. type1 and
// type2 are always present.
func (i *ParsedIntersection) ToMap(style KeyStyle) map[string]any {
	if i == nil {
		return nil
	}
	return restyle(fieldMap(i), style)
}

// fieldMap goes through the json tags so ToMap and the HTTP output share one
// definition of which fields exist and when they are omitted.
func fieldMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	m := make(map[string]any)
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func restyle(m map[string]any, style KeyStyle) map[string]any {
	if style != KeyCamel {
		return m
	}
	return RenameKeys(m, SnakeToCamel)
}

// RenameKeys applies rename to every key of m and returns a new map.
func RenameKeys(m map[string]any, rename func(string) string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[rename(k)] = v
	}
	return out
}

// SnakeToCamel converts "sec_unit_type" to "secUnitType".
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		r := []rune(parts[i])
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, "")
}

// CamelToSnake converts "secUnitType" to "sec_unit_type". Digits stay
// attached to the preceding word ("plus4", "street1").
func CamelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

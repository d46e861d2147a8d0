// Package dictionary holds the static lookup tables the address parser is
// driven by: directionals, street types, regions, secondary unit types,
// delivery indicators and facility keywords.
//
// Every table maps an input variant to its canonical form. Tables are built
// once at package initialisation and expose no mutation path, so they can be
// shared by any number of goroutines.
package dictionary

import (
	"sort"
	"strings"

	"github.com/postline/internal/normalize"
)

// Dict is an immutable variant→canonical mapping.
type Dict struct {
	entries map[string]string
	folded  map[string]string
}

// New builds a Dict. Keys are lowercased; values are kept as given.
func New(entries map[string]string) Dict {
	d := Dict{
		entries: make(map[string]string, len(entries)),
		folded:  make(map[string]string, len(entries)),
	}
	for k, v := range entries {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		d.entries[key] = v
		d.folded[normalize.Fold(key)] = v
	}
	return d
}

// Merge combines dictionaries; later ones win on duplicate keys.
func Merge(dicts ...Dict) Dict {
	all := make(map[string]string)
	for _, d := range dicts {
		for k, v := range d.entries {
			all[k] = v
		}
	}
	return New(all)
}

// Len returns the number of variants.
func (d Dict) Len() int {
	return len(d.entries)
}

// Keys returns the variants sorted alphabetically. The slice is a copy.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the distinct canonical forms, sorted.
func (d Dict) Values() []string {
	seen := make(map[string]bool, len(d.entries))
	var values []string
	for _, v := range d.entries {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// Lookup resolves a variant to its canonical form. Matching ignores case,
// accents, surrounding whitespace and a trailing period ("Ave." == "ave").
func (d Dict) Lookup(s string) (string, bool) {
	key := normalize.Fold(normalize.Spaces(s))
	if v, ok := d.folded[key]; ok {
		return v, true
	}
	v, ok := d.folded[strings.TrimSuffix(key, ".")]
	return v, ok
}

// Has reports whether s is a known variant.
func (d Dict) Has(s string) bool {
	_, ok := d.Lookup(s)
	return ok
}

// Filter returns the subset of entries whose key satisfies keep.
func (d Dict) Filter(keep func(key, value string) bool) Dict {
	subset := make(map[string]string)
	for k, v := range d.entries {
		if keep(k, v) {
			subset[k] = v
		}
	}
	return New(subset)
}

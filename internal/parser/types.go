package parser

import "fmt"

// Kind tells the two result shapes apart.
type Kind string

const (
	KindAddress      Kind = "address"
	KindIntersection Kind = "intersection"
)

// Result is returned by ParseLocation: a *ParsedAddress or a
// *ParsedIntersection. A nil Result means the input could not be parsed.
type Result interface {
	Kind() Kind
	ToMap(style KeyStyle) map[string]any
}

// ParsedAddress is the structured form of a single mailing address. Every
// field is optional; a field is present when the parser found it.
type ParsedAddress struct {
	Number          string `json:"number,omitempty"`
	Fraction        string `json:"fraction,omitempty"`
	Prefix          string `json:"prefix,omitempty"`
	Street          string `json:"street,omitempty"`
	Type            string `json:"type,omitempty"`
	Suffix          string `json:"suffix,omitempty"`
	SecUnitType     string `json:"sec_unit_type,omitempty"`
	SecUnitNum      string `json:"sec_unit_num,omitempty"`
	Unit            string `json:"unit,omitempty"` // legacy alias of SecUnitNum
	Place           string `json:"place,omitempty"`
	Locality        string `json:"locality,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	Zip             string `json:"zip,omitempty"`
	Plus4           string `json:"plus4,omitempty"`
	ZipValid        *bool  `json:"zip_valid,omitempty"`
	PostalType      string `json:"postal_type,omitempty"`
	Country         string `json:"country,omitempty"`
	GeneralDelivery bool   `json:"general_delivery,omitempty"`
	RuralRoute      string `json:"rr,omitempty"`
	RPO             string `json:"rpo,omitempty"`
	Station         string `json:"station,omitempty"`
	Secondary       string `json:"secondary,omitempty"`
}

// ParsedIntersection describes two crossing streets sharing one locality.
// Type1 and Type2 are always serialised, as "" when no type was found.
type ParsedIntersection struct {
	Prefix1 string `json:"prefix1,omitempty"`
	Street1 string `json:"street1"`
	Type1   string `json:"type1"`
	Suffix1 string `json:"suffix1,omitempty"`
	Prefix2 string `json:"prefix2,omitempty"`
	Street2 string `json:"street2"`
	Type2   string `json:"type2"`
	Suffix2 string `json:"suffix2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Plus4   string `json:"plus4,omitempty"`
	Country string `json:"country,omitempty"`
}

func (a *ParsedAddress) Kind() Kind { return KindAddress }

func (i *ParsedIntersection) Kind() Kind { return KindIntersection }

// Meaningful reports whether the record carries a street number, a street
// or a General Delivery flag. Records without any of them are never
// returned to callers.
func (a *ParsedAddress) Meaningful() bool {
	return a != nil && (a.Number != "" || a.Street != "" || a.GeneralDelivery)
}

// Valid reports whether both streets were found.
func (i *ParsedIntersection) Valid() bool {
	return i != nil && i.Street1 != "" && i.Street2 != ""
}

func (a *ParsedAddress) String() string {
	return fmt.Sprintf("Number: %s, Street: %s %s %s %s, Unit: %s %s, City: %s, State: %s, Zip: %s",
		a.Number, a.Prefix, a.Street, a.Type, a.Suffix, a.SecUnitType, a.SecUnitNum, a.City, a.State, a.Zip)
}

func (i *ParsedIntersection) String() string {
	return fmt.Sprintf("%s %s %s %s & %s %s %s %s, City: %s, State: %s",
		i.Prefix1, i.Street1, i.Type1, i.Suffix1, i.Prefix2, i.Street2, i.Type2, i.Suffix2, i.City, i.State)
}

func boolPtr(b bool) *bool {
	return &b
}

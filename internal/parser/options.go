package parser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/postline/internal/dictionary"
	"github.com/postline/internal/validation"
)

// Country modes accepted by Options.Country.
const (
	CountryAuto = "auto"
	CountryUS   = dictionary.CountryUS
	CountryCA   = dictionary.CountryCA
)

// Options tune a single parse call. They are plain values: nothing is kept
// between calls. Use DefaultOptions for the documented defaults; the zero
// value disables facility and parenthetical extraction.
type Options struct {
	// Country restricts region and postal code recognition to one country
	// ("US", "CA") or allows both ("auto", the default).
	Country string `json:"country" validate:"omitempty,oneof=US CA auto"`

	// Strict drops postal codes that fail validation instead of keeping them
	// flagged with zip_valid=false.
	Strict bool `json:"strict"`

	// ValidatePostalCode attaches zip_valid=true to valid codes. Invalid codes
	// are always flagged.
	ValidatePostalCode bool `json:"validate_postal_code"`

	ExtractFacilities  bool `json:"extract_facilities"`
	ParseParenthetical bool `json:"parse_parenthetical"`

	// KeyStyle selects the key naming of ToMap output only.
	KeyStyle KeyStyle `json:"key_style" validate:"omitempty,oneof=snake camel"`

	// Debug traces each cascade phase through the debug logger.
	Debug bool `json:"-"`

	// Heuristics overrides the tuned constants; nil uses DefaultHeuristics.
	Heuristics *Heuristics `json:"-"`
}

// DefaultOptions returns auto country detection with facility and
// parenthetical extraction enabled and snake_case keys.
func DefaultOptions() Options {
	return Options{
		Country:            CountryAuto,
		ExtractFacilities:  true,
		ParseParenthetical: true,
		KeyStyle:           KeySnake,
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks the enumerated fields. The parse entry points never fail
// on bad options (unknown values fall back to defaults); Validate is for
// surfaces that want to reject them up front.
func (o Options) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid parse options: %w", err)
	}
	return nil
}

// resolved returns a copy with the country normalised and heuristics filled.
func (o Options) resolved() Options {
	switch strings.ToUpper(strings.TrimSpace(o.Country)) {
	case CountryUS:
		o.Country = CountryUS
	case CountryCA:
		o.Country = CountryCA
	default:
		o.Country = CountryAuto
	}
	if o.Heuristics == nil {
		o.Heuristics = DefaultHeuristics()
	}
	return o
}

// Heuristics are empirically tuned constants. They carry no derivation and
// are exposed so callers can adjust them without touching the cascade.
type Heuristics struct {
	// MinWordsForUnanchoredCity is the word count from which a comma-less
	// address without a recognised region still gets a city split off its
	// tail.
	MinWordsForUnanchoredCity int

	// TitleCaseConnectors are skipped by the Title-Case facility test.
	TitleCaseConnectors map[string]bool

	// FacilityRules are tried in order on the first segment.
	FacilityRules []FacilityRule

	// Input is the dispatcher's minimum length and alphanumeric ratio.
	Input validation.InputThresholds
}

// DefaultMinWordsForUnanchoredCity is the default for
// Heuristics.MinWordsForUnanchoredCity.
const DefaultMinWordsForUnanchoredCity = 5

// DefaultHeuristics returns the tuned defaults.
func DefaultHeuristics() *Heuristics {
	return &Heuristics{
		MinWordsForUnanchoredCity: DefaultMinWordsForUnanchoredCity,
		TitleCaseConnectors:       dictionary.TitleCaseConnectors(),
		FacilityRules:             DefaultFacilityRules(),
		Input:                     validation.DefaultInputThresholds(),
	}
}

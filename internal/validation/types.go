package validation

import "fmt"

// PostalType distinguishes a US ZIP code from a Canadian postal code.
type PostalType string

const (
	PostalTypeZip    PostalType = "zip"
	PostalTypePostal PostalType = "postal"
)

// PostalResult is the outcome of ValidatePostalCode.
type PostalResult struct {
	IsValid   bool       `json:"is_valid"`
	Type      PostalType `json:"type,omitempty"` // empty when the shape is unrecognised
	Formatted string     `json:"formatted"`
}

// InputThresholds holds the limits HasValidAddressComponents rejects
// garbage input with. The values are empirically tuned.
type InputThresholds struct {
	// MinLength is the shortest input, in runes, worth parsing.
	MinLength int `json:"min_length"`

	// MinAlnumRatio is the minimum share of non-space runes that must be
	// letters or digits.
	MinAlnumRatio float64 `json:"min_alnum_ratio"`
}

// DefaultInputThresholds returns the thresholds used by the dispatcher.
func DefaultInputThresholds() InputThresholds {
	return InputThresholds{
		MinLength:     3,
		MinAlnumRatio: 0.5,
	}
}

func (pr PostalResult) String() string {
	if pr.IsValid {
		return fmt.Sprintf("VALID %s: %s", pr.Type, pr.Formatted)
	}
	if pr.Type == "" {
		return fmt.Sprintf("INVALID: %q", pr.Formatted)
	}
	return fmt.Sprintf("INVALID %s: %s", pr.Type, pr.Formatted)
}

// Country maps the postal type to the country it implies.
func (pr PostalResult) Country() string {
	switch pr.Type {
	case PostalTypeZip:
		return "US"
	case PostalTypePostal:
		return "CA"
	}
	return ""
}

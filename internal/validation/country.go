package validation

import "github.com/postline/internal/dictionary"

// InferCountry derives the country from a region and a postal code. A valid
// postal code wins because it is the more specific of the two; a rejected
// one is ignored and the region decides. Neither recognised yields "".
func InferCountry(state, zip string) string {
	if zip != "" {
		if pr := ValidatePostalCode(zip); pr.IsValid {
			return pr.Country()
		}
	}
	if state != "" {
		if region, ok := dictionary.LookupRegion(state); ok {
			return region.Country
		}
	}
	return ""
}

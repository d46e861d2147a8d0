package validation

import (
	"regexp"
	"strings"
)

// Sources for locating postal codes inside free text. They accept any
// plausible shape; ValidatePostalCode decides whether the code is real.
const (
	zipSource    = `\d{5}(?:[ -]?\d{4})?`
	postalSource = `[A-Za-z]\d[A-Za-z][ -]?\d[A-Za-z]\d`

	// Malformed codes: too few or too many digits, a ZIP with a cut-off
	// extension, a Canadian code missing characters.
	zipLikeSource    = `\d{5}[ -]\d{1,4}|\d{3,9}`
	postalLikeSource = `[A-Za-z]\d[A-Za-z](?:[ -]?\d(?:[A-Za-z]\d?)?)?`
)

var (
	reZip    = regexp.MustCompile(`^(\d{5})(?:[ -]?(\d{4}))?$`)
	rePostal = regexp.MustCompile(`^([A-Z]\d[A-Z])[ -]?(\d[A-Z]\d)$`)
)

// Canada Post never uses D, F, I, O, Q or U, and W and Z never lead.
const (
	postalFirstLetters = "ABCEGHJKLMNPRSTVXY"
	postalOtherLetters = "ABCEGHJKLMNPRSTVWXYZ"
)

// PostalSource returns the regular expression source matching a postal code
// for country ("US", "CA", or anything else for both). It has no anchors and
// no groups.
func PostalSource(country string) string {
	switch strings.ToUpper(country) {
	case "US":
		return zipSource
	case "CA":
		return postalSource
	}
	return zipSource + `|` + postalSource
}

// PostalLikeSource is PostalSource for tokens that are shaped roughly like a
// postal code but are usually not valid ones. Callers try PostalSource first.
func PostalLikeSource(country string) string {
	switch strings.ToUpper(country) {
	case "US":
		return zipLikeSource
	case "CA":
		return postalLikeSource
	}
	return zipLikeSource + `|` + postalLikeSource
}

// ValidatePostalCode checks a US ZIP (12345, 12345-6789) or Canadian postal
// code (A1A 1A1) and returns its normalised form. ZIP+4 accepts a space,
// dash or no separator and is normalised to a dash; postal codes are
// upper-cased with a single space. Formatting is idempotent.
func ValidatePostalCode(code string) PostalResult {
	s := strings.ToUpper(strings.TrimSpace(code))

	if m := reZip.FindStringSubmatch(s); m != nil {
		formatted := m[1]
		if m[2] != "" {
			formatted += "-" + m[2]
		}
		return PostalResult{
			IsValid:   m[1] != "00000",
			Type:      PostalTypeZip,
			Formatted: formatted,
		}
	}

	if m := rePostal.FindStringSubmatch(s); m != nil {
		formatted := m[1] + " " + m[2]
		return PostalResult{
			IsValid:   validPostalLetters(m[1] + m[2]),
			Type:      PostalTypePostal,
			Formatted: formatted,
		}
	}

	return PostalResult{IsValid: false, Formatted: s}
}

// validPostalLetters checks the letter positions of a 6-character code.
func validPostalLetters(code string) bool {
	if len(code) != 6 {
		return false
	}
	if !strings.ContainsRune(postalFirstLetters, rune(code[0])) {
		return false
	}
	return strings.ContainsRune(postalOtherLetters, rune(code[2])) &&
		strings.ContainsRune(postalOtherLetters, rune(code[4]))
}

// SplitZip separates a formatted ZIP+4 into its base and extension.
func SplitZip(formatted string) (zip, plus4 string) {
	if i := strings.IndexByte(formatted, '-'); i == 5 {
		return formatted[:5], formatted[6:]
	}
	return formatted, ""
}

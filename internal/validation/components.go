package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/postline/internal/normalize"
	"github.com/postline/internal/pattern"
)

var rePostalAnywhere = regexp.MustCompile(`\b(?:` + PostalSource("") + `)\b`)

// HasValidAddressComponents is the cheap circuit breaker run before the
// parsing cascade. It rejects text that is too short or mostly punctuation,
// and text with no address signal at all.
func HasValidAddressComponents(text string) bool {
	return DefaultInputThresholds().Check(text)
}

// Check applies the thresholds and then looks for any address signal: a
// digit, a comma, a street type, a directional, a region, a postal code, an
// intersection connector, a PO box indicator or "General Delivery".
func (t InputThresholds) Check(text string) bool {
	s := strings.TrimSpace(text)
	if utf8.RuneCountInString(s) < t.MinLength {
		return false
	}
	if normalize.AlnumRatio(s) < t.MinAlnumRatio {
		return false
	}

	if normalize.HasDigit(s) || strings.Contains(s, ",") {
		return true
	}

	set := pattern.Default()
	switch {
	case set.StreetType.MatchString(s),
		hasDirectionalWord(set, s),
		set.RegionName.MatchString(s),
		set.RegionAbbrCap.MatchString(s),
		rePostalAnywhere.MatchString(s),
		set.Connector.MatchString(s),
		set.POBox.MatchString(s),
		set.GeneralDeliv.MatchString(s):
		return true
	}
	return false
}

// hasDirectionalWord ignores lower-case one- and two-letter matches; "e" or
// "ne" in running text is far more often noise than a compass direction.
func hasDirectionalWord(set *pattern.Set, s string) bool {
	for _, m := range set.Directional.FindAllString(s, -1) {
		if len(m) > 2 || m == strings.ToUpper(m) {
			return true
		}
	}
	return false
}

package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// Colloquial Indonesian money shorthand: "15jt", "2 juta", "500rb", "50k".
// Bare numbers of five or more digits are taken as literal Rupiah.
var (
	millionUnitPattern  = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*(jt|juta)`)
	thousandUnitPattern = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*(rb|ribu|k)\b`)
	englishUnitPattern  = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*m(illion)?\b`)
	plainAmountPattern  = regexp.MustCompile(`\d{5,}`)
)

// ParseAmount parses a text fragment believed to contain an amount with a
// unit suffix. Returns false when no shorthand pattern matches.
func ParseAmount(fragment string) (int64, bool) {
	if m := millionUnitPattern.FindStringSubmatch(fragment); m != nil {
		return scaleAmount(m[1], 1_000_000)
	}

	if m := thousandUnitPattern.FindStringSubmatch(fragment); m != nil {
		return scaleAmount(m[1], 1_000)
	}

	if m := englishUnitPattern.FindStringSubmatch(fragment); m != nil {
		return scaleAmount(m[1], 1_000_000)
	}

	if m := plainAmountPattern.FindString(fragment); m != "" {
		return scaleAmount(m, 1)
	}

	return 0, false
}

func scaleAmount(number string, multiplier int64) (int64, bool) {
	number = strings.ReplaceAll(number, ",", ".")
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, false
	}
	return int64(value * float64(multiplier)), true
}

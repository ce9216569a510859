package aggregate

import (
	"fmt"
	"strings"
)

const zeroPercent = "0%"

// Percent formats numerator/denominator as a percentage with two decimals,
// dropping a trailing ".00". It returns "0%" when either side is zero.
func Percent(numerator, denominator int64) string {
	if numerator == 0 || denominator == 0 {
		return zeroPercent
	}

	s := fmt.Sprintf("%.2f%%", 100*float64(numerator)/float64(denominator))
	if strings.HasSuffix(s, ".00%") {
		s = strings.TrimSuffix(s, ".00%") + "%"
	}
	return s
}

// Fatality - deaths over closed and open confirmed cases
func Fatality(dead, confirmed, cured int64) string {
	return Percent(dead, confirmed+cured)
}

// Lethality - deaths over total cases
func Lethality(dead, total int64) string {
	return Percent(dead, total)
}

package utils

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// CleanNumber - strip thousands separators and whitespace from a formatted
// number such as " 1,234 "
func CleanNumber(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ParseCount - parse a formatted count. Decimal values are truncated;
// anything unparseable, negative or beyond int64 yields 0.
func ParseCount(s string) int64 {
	c := CleanNumber(s)
	if c == "" {
		return 0
	}

	if n, err := strconv.ParseInt(c, 10, 64); nil == err {
		if n < 0 {
			return 0
		}
		return n
	}

	// float64(math.MaxInt64) rounds up to 2^63
	if f, ok := parseFinite(c); ok && f >= 0 && f < float64(math.MaxInt64) {
		return int64(f)
	}

	return 0
}

// ParseRate - parse a formatted decimal number, ok is false when the value
// is missing or malformed
func ParseRate(s string) (float64, bool) {
	c := CleanNumber(s)
	if c == "" {
		return 0, false
	}

	return parseFinite(c)
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

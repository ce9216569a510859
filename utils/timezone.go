package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var gmtOffset = regexp.MustCompile(`^GMT([+-])(\d{1,2})(?::(\d{2}))?$`)

// GetLocation returns a location of a GMT-X[:MM] format timezone, or of an
// IANA zone name. It returns nil for an empty or unknown timezone.
func GetLocation(timezone string) *time.Location {
	tz := strings.TrimSpace(timezone)
	if tz == "" {
		return nil
	}

	name := strings.ToUpper(tz)
	if m := gmtOffset.FindStringSubmatch(name); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes >= 60 {
			return nil
		}

		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(name, offset)
	}

	if loc, err := time.LoadLocation(tz); nil == err {
		return loc
	}
	return nil
}

// Package timeutil converts between free-form duration strings and minute
// counts.
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangePattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*(min|h|hour|minute)`)
	singlePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(m|h|min|hour|minute)`)
)

// ParseMinutes reads strings like "30m", "1.5h", or "30-45 min" and returns
// minutes. A range averages its bounds. Hour-like units scale by 60.
// Anything unrecognized is 0, not an error.
func ParseMinutes(s string) float64 {
	trimmed := strings.ToLower(strings.TrimSpace(s))

	if m := rangePattern.FindStringSubmatch(trimmed); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		avg := (lo + hi) / 2
		if strings.HasPrefix(m[3], "h") {
			return avg * 60
		}
		return avg
	}

	if m := singlePattern.FindStringSubmatch(trimmed); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		if strings.HasPrefix(m[2], "h") {
			return value * 60
		}
		return value
	}

	return 0
}

// FormatMinutes renders a minute count as "0m", "{m}m", "{h}h", or
// "{h}h {m}m". The minute remainder is rounded to the nearest integer.
func FormatMinutes(minutes float64) string {
	if minutes == 0 {
		return "0m"
	}

	hours := int(math.Floor(minutes / 60))
	mins := int(math.Round(math.Mod(minutes, 60)))

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+)\s*(?:hours?|hrs?|h)\b`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?|m)\b`)
)

// ParseEstimate parses a free-text study time estimate into minutes.
// Accepted forms include "10 mins", "1 hour", "1 hour 30 mins" and "45 minutes".
// The second return value reports whether anything usable was found.
func ParseEstimate(estimate string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(estimate))
	if s == "" {
		return 0, false
	}

	total := 0
	found := false

	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err == nil {
			total += hours * 60
			found = true
		}
	}

	if m := minutesPattern.FindStringSubmatch(s); m != nil {
		mins, err := strconv.Atoi(m[1])
		if err == nil {
			total += mins
			found = true
		}
	}

	return total, found
}

// FormatMinutes renders a minute count back into the "N hours M mins" form
// used by concept time estimates.
func FormatMinutes(total int) string {
	if total <= 0 {
		return "0 mins"
	}

	hours := total / 60
	mins := total % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d %s", mins, pluralize("min", mins))
	case mins == 0:
		return fmt.Sprintf("%d %s", hours, pluralize("hour", hours))
	default:
		return fmt.Sprintf("%d %s %d %s", hours, pluralize("hour", hours), mins, pluralize("min", mins))
	}
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

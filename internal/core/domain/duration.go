package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var hourPattern = regexp.MustCompile(`(\d+)\s*hour`)

// ParseDurationHours maps a free-text leave-duration label to a number of
// hours. It is a total function: unknown input yields 0.
//
// The checks are ordered: the fixed multi-word phrases must win over the
// generic "half" fallback and the numeric-hour pattern ("first half" is 4,
// not 3; "4 hours" must not score as a half day).
func ParseDurationHours(label string) int {
	d := strings.ToLower(label)
	switch {
	case strings.Contains(d, "1 day"):
		return 9
	case strings.Contains(d, "first half"):
		return 4
	case strings.Contains(d, "second half"):
		return 3
	case strings.Contains(d, "half"):
		return 3
	case strings.Contains(d, "2 hours"):
		return 2
	case strings.Contains(d, "4 hours"):
		return 4
	case strings.Contains(d, "1 hour"):
		return 1
	}
	if m := hourPattern.FindStringSubmatch(d); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n
		}
	}
	return 0
}

package logo

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the longest leading decimal number of a word.
var numberPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// parseNumber reads the numeric prefix of s, so "10abc" is 10. It reports
// false when s does not start with a finite number.
func parseNumber(s string) (float64, bool) {
	m := numberPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// num returns argument i as a number. Missing and malformed arguments
// are 0.
func (c Command) num(i int) float64 {
	if i >= len(c.Args) {
		return 0
	}
	v, _ := parseNumber(c.Args[i])
	return v
}

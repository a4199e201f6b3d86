package centres

import (
	"math"
	"strconv"
	"strings"
)

// ParseRadius reads the leading integer of raw: leading whitespace and a sign
// are allowed and anything after the digits is ignored, so "10mi" is 10 and
// "7.9" is 7. Input with no leading digits yields def.
func ParseRadius(raw string, def int) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return def
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	return n
}

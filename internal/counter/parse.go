package counter

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseInput reads the integer prefix of raw the way a numeric form field
// does: surrounding whitespace is ignored, an optional sign is accepted and
// parsing stops at the first non-digit. Input without a leading integer
// yields zero. Prefixes beyond the int range saturate at math.MaxInt or
// math.MinInt.
func ParseInput(raw string) int {
	v, _ := parseLeadingInt(raw)
	return v
}

func parseLeadingInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return v, true
}

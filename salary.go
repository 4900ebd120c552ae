package jobkpi

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// salaryTokenRe matches a run of digits and thousands separators with an
// optional "k" multiplier suffix.
var salaryTokenRe = regexp.MustCompile(`[\d,]+k?`)

// NormalizeSalary turns a salary display string into a numeric estimate.
//
// Every numeric token found in the text is parsed and the arithmetic mean of
// the parsed values is returned, rounded to 2 decimal places. A range such as
// "£50k - £60k" therefore yields its midpoint and a single amount yields
// itself. Malformed inputs go through the same averaging: the estimate is a
// heuristic, not a reading of the range bounds.
//
// Returns nil if the text is empty, is NotCaptured, or holds no parseable token.
func NormalizeSalary(text string) *float64 {
	if text == "" || text == NotCaptured {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) {
			return -1
		}
		if r == '-' {
			return ' '
		}
		return r
	}, text)
	cleaned = strings.ToLower(cleaned)

	var sum float64
	var n int
	for _, token := range salaryTokenRe.FindAllString(cleaned, -1) {
		multiplier := 1.0
		if strings.HasSuffix(token, "k") {
			multiplier = 1000
			token = strings.TrimSuffix(token, "k")
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
		if err != nil {
			continue
		}
		sum += v * multiplier
		n++
	}
	if n == 0 {
		return nil
	}

	mean := roundTo(sum/float64(n), 2)
	return &mean
}

// roundTo rounds v to the given number of decimal places, half away from zero.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

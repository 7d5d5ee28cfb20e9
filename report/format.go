// Package report renders the analysis breakdowns into the text artifacts
// that accompany the manuscript. Layout, headings and histogram bars
// follow the original review artifacts character for character.
package report

import (
	"math"
	"strconv"
	"strings"
)

// bar renders a histogram bar, one block per two percent.
func bar(pct float64) string {
	n := int(pct / 2)
	if n <= 0 {
		return ""
	}
	return strings.Repeat("█", n)
}

// padRight pads to a rune width; fmt's %-Ns counts bytes and misaligns
// accented labels.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// money renders a value rounded to whole units with thousands separators.
func money(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ",")
}

// floatText renders a float the shortest way, "0.5079" rather than
// "0.507900".
func floatText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

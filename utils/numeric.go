package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// numericPattern matches a numeric-looking substring: a digit optionally
// preceded by a sign, possibly containing commas and decimal points.
var numericPattern = regexp.MustCompile(`[-+]?\d[\d,\.]*`)

// ParseNumeric converts a heterogeneous numeric string into a float64.
//
// Handles:
//   - commas and spaces ("1,234.50")
//   - accounting negatives ("(100)" → -100)
//   - scale suffixes K/M/B, uppercase only ("2M" → 2000000)
//   - plain signed, decimal and scientific notation
//
// Parentheses are stripped before the suffix check, so "(1.5M)" becomes
// "-1.5M" and still scales to -1500000. Malformed input returns ok=false,
// never an error and never a partial number.
func ParseNumeric(text string) (float64, bool) {
	text = strings.ReplaceAll(text, ",", "")
	text = strings.ReplaceAll(text, " ", "")
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		text = "-" + text[1:len(text)-1]
	}

	var multiplier float64 = 1
	switch {
	case strings.HasSuffix(text, "K"):
		multiplier = 1e3
		text = text[:len(text)-1]
	case strings.HasSuffix(text, "M"):
		multiplier = 1e6
		text = text[:len(text)-1]
	case strings.HasSuffix(text, "B"):
		multiplier = 1e9
		text = text[:len(text)-1]
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value * multiplier, true
}

// ContainsNumber reports whether a string contains a numeric-looking substring.
func ContainsNumber(s string) bool {
	return numericPattern.MatchString(s)
}

// FindNumericSubstrings returns every numeric substring of a line, in order.
// A match glued to a preceding letter or digit is rejected so that tokens
// like "FY23" or invoice codes do not count as values.
func FindNumericSubstrings(line string) []string {
	var nums []string
	for _, loc := range numericPattern.FindAllStringIndex(line, -1) {
		if loc[0] > 0 {
			prev := line[loc[0]-1]
			if prev == '_' ||
				(prev >= 'a' && prev <= 'z') ||
				(prev >= 'A' && prev <= 'Z') ||
				(prev >= '0' && prev <= '9') {
				continue
			}
		}
		nums = append(nums, line[loc[0]:loc[1]])
	}
	return nums
}

// FormatCurrency renders a value with a currency symbol and two decimals,
// e.g. "$1,234.56". Used when flattening metrics for display and prompts.
func FormatCurrency(value float64, currency string) string {
	if currency == "" || currency == "symbolic" {
		currency = "$"
	}
	return currency + humanizeFloat(value)
}

// humanizeFloat formats a float with thousands separators and two decimals.
func humanizeFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(fracPart)
	return b.String()
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumericPlain(t *testing.T) {
	v, ok := ParseNumeric("1234.5")
	assert.True(t, ok)
	assert.Equal(t, 1234.5, v)

	v, ok = ParseNumeric("1,234.50")
	assert.True(t, ok)
	assert.Equal(t, 1234.50, v)

	v, ok = ParseNumeric("-42")
	assert.True(t, ok)
	assert.Equal(t, -42.0, v)

	v, ok = ParseNumeric("1e6")
	assert.True(t, ok)
	assert.Equal(t, 1000000.0, v)
}

func TestParseNumericAccountingNegative(t *testing.T) {
	v, ok := ParseNumeric("(100)")
	assert.True(t, ok)
	assert.Equal(t, -100.0, v)
}

func TestParseNumericSuffixes(t *testing.T) {
	v, ok := ParseNumeric("2M")
	assert.True(t, ok)
	assert.Equal(t, 2000000.0, v)

	v, ok = ParseNumeric("1.5K")
	assert.True(t, ok)
	assert.Equal(t, 1500.0, v)

	v, ok = ParseNumeric("3B")
	assert.True(t, ok)
	assert.Equal(t, 3000000000.0, v)

	// lowercase suffixes are not recognized
	_, ok = ParseNumeric("2m")
	assert.False(t, ok)
}

func TestParseNumericParenthesizedSuffix(t *testing.T) {
	// parens are stripped before the suffix check; the minus survives
	v, ok := ParseNumeric("(1.5M)")
	assert.True(t, ok)
	assert.Equal(t, -1500000.0, v)
}

func TestParseNumericMalformed(t *testing.T) {
	_, ok := ParseNumeric("")
	assert.False(t, ok)

	_, ok = ParseNumeric("abc")
	assert.False(t, ok)

	_, ok = ParseNumeric("1.2.3")
	assert.False(t, ok)
}

func TestContainsNumber(t *testing.T) {
	assert.True(t, ContainsNumber("Revenue: 1,200"))
	assert.True(t, ContainsNumber("-42"))
	assert.False(t, ContainsNumber("no digits here"))
	assert.False(t, ContainsNumber(""))
}

func TestFindNumericSubstrings(t *testing.T) {
	nums := FindNumericSubstrings("total revenue was $1,200 in fy23")
	assert.Equal(t, []string{"1,200"}, nums)

	nums = FindNumericSubstrings("assets 500 liabilities 300")
	assert.Equal(t, []string{"500", "300"}, nums)

	assert.Empty(t, FindNumericSubstrings("nothing numeric"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatCurrency(1234.56, "$"))
	assert.Equal(t, "₹1,200.00", FormatCurrency(1200, "₹"))
	assert.Equal(t, "$-500.00", FormatCurrency(-500, ""))
}

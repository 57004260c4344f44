package utils

import (
	"strings"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// currencySymbols is checked in this fixed order; the first symbol contained
// anywhere in the text wins, not the first occurrence in the text.
var currencySymbols = []string{"₹", "$", "€", "£", "¥"}

// currencyCodes are matched case-insensitively as substrings and reported
// uppercased.
var currencyCodes = []string{"inr", "usd", "eur", "gbp", "jpy", "aud"}

// tableCurrencySymbols is the reduced set scanned inside table cells.
var tableCurrencySymbols = []string{"₹", "$", "€", "£"}

// CurrencySymbolic marks a document whose tables carry a currency symbol that
// the text scan could not attribute to a specific currency.
const CurrencySymbolic = "symbolic"

// DetectCurrency returns the first matching currency indicator from the raw
// text or the tables, or "" when no signal is present.
func DetectCurrency(rawText string, tables []dto.Table) string {
	for _, sym := range currencySymbols {
		if strings.Contains(rawText, sym) {
			return sym
		}
	}

	lower := strings.ToLower(rawText)
	for _, code := range currencyCodes {
		if strings.Contains(lower, code) {
			return strings.ToUpper(code)
		}
	}

	for _, table := range tables {
		if tableHasCurrencySymbol(table) {
			return CurrencySymbolic
		}
	}
	return ""
}

func tableHasCurrencySymbol(table dto.Table) bool {
	for _, cell := range table.Headers {
		if cellHasCurrencySymbol(cell) {
			return true
		}
	}
	for _, row := range table.Rows {
		for _, cell := range row {
			if cellHasCurrencySymbol(cell) {
				return true
			}
		}
	}
	return false
}

func cellHasCurrencySymbol(cell string) bool {
	for _, sym := range tableCurrencySymbols {
		if strings.Contains(cell, sym) {
			return true
		}
	}
	return false
}

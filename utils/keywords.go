package utils

import (
	"strings"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// MetricKeywords maps one canonical metric to its recognized surface-form
// phrases, lowercase, used for substring matching. Order of phrases carries
// no priority; the first match per source wins.
type MetricKeywords struct {
	Key     dto.MetricKey
	Phrases []string
}

// MetricCatalog is the static keyword catalog for detecting common financial
// metrics in text and tables. It is loaded once and never mutated at runtime.
// Catalog order is the canonical matching order for row labels.
var MetricCatalog = []MetricKeywords{
	{dto.MetricRevenue, []string{"revenue", "total revenue", "sales", "net sales"}},
	{dto.MetricGrossProfit, []string{"gross profit", "gross margin"}},
	{dto.MetricOperatingIncome, []string{"operating income", "operating profit"}},
	{dto.MetricNetIncome, []string{"net income", "net profit", "profit for the year", "profit after tax"}},
	{dto.MetricEBITDA, []string{"ebitda"}},
	{dto.MetricTotalAssets, []string{"total assets"}},
	{dto.MetricTotalLiabilities, []string{"total liabilities"}},
	{dto.MetricCashAndEquivalents, []string{"cash and cash equivalents", "cash and equivalents"}},
	{dto.MetricCostOfRevenue, []string{"cost of revenue", "cost of sales", "cost of goods sold", "cogs"}},
	{dto.MetricTotalEquity, []string{"total equity", "shareholders' equity", "shareholders equity"}},
}

// KeywordsFor returns the phrase list for a metric, or nil for an unknown key.
func KeywordsFor(key dto.MetricKey) []string {
	for _, mk := range MetricCatalog {
		if mk.Key == key {
			return mk.Phrases
		}
	}
	return nil
}

// containsAny reports whether s contains any of the given lowercase phrases.
// s must already be lowercased by the caller.
func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}

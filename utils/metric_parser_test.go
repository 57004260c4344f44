package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

func TestScanTablesRowLabels(t *testing.T) {
	tables := []dto.Table{
		{
			Headers: []string{"Metric", "Amount"},
			Rows: [][]string{
				{"Total Revenue", "1,500"},
				{"Net Income", "(200)"},
				{"Total Assets", "10,000"},
			},
		},
	}

	results := ScanTables(tables)

	assert.Equal(t, 1500.0, results[dto.MetricRevenue])
	assert.Equal(t, -200.0, results[dto.MetricNetIncome])
	assert.Equal(t, 10000.0, results[dto.MetricTotalAssets])
	assert.NotContains(t, results, dto.MetricEBITDA)
}

func TestScanTablesHeaderColumns(t *testing.T) {
	tables := []dto.Table{
		{
			Headers: []string{"Year", "Revenue", "EBITDA"},
			Rows: [][]string{
				{"Q1", "100", "20"},
				{"Q2", "150", "30"},
			},
		},
	}

	results := ScanTables(tables)

	// first numeric cell top-down per matching column
	assert.Equal(t, 100.0, results[dto.MetricRevenue])
	assert.Equal(t, 20.0, results[dto.MetricEBITDA])
}

func TestScanTablesRowLabelWinsOverHeader(t *testing.T) {
	// both passes fire for the same metric; the row-label pass runs second
	tables := []dto.Table{
		{
			Headers: []string{"Revenue", "Notes"},
			Rows: [][]string{
				{"900", "from header column"},
				{"Revenue for the year", "750"},
			},
		},
	}

	results := ScanTables(tables)
	assert.Equal(t, 750.0, results[dto.MetricRevenue])
}

func TestScanTablesLaterTableWins(t *testing.T) {
	tables := []dto.Table{
		{Headers: []string{"Metric", "Value"}, Rows: [][]string{{"Revenue", "100"}}},
		{Headers: []string{"Metric", "Value"}, Rows: [][]string{{"Revenue", "300"}}},
	}

	results := ScanTables(tables)
	assert.Equal(t, 300.0, results[dto.MetricRevenue])
}

func TestScanTablesRaggedRows(t *testing.T) {
	tables := []dto.Table{
		{
			Headers: []string{"Metric", "2022", "2023"},
			Rows: [][]string{
				{"Revenue"}, // missing value cells
				{"Net Income", "50"},
			},
		},
	}

	results := ScanTables(tables)

	assert.NotContains(t, results, dto.MetricRevenue)
	assert.Equal(t, 50.0, results[dto.MetricNetIncome])
}

func TestFindMetricLines(t *testing.T) {
	text := "Company overview\nTotal Revenue was $1,200 in FY23\nRevenue grew again to 1,400\nNo numbers on this revenue line"

	hits := FindMetricLines(text, KeywordsFor(dto.MetricRevenue))

	// document order; the first line hits both "revenue" and "total revenue",
	// the line without numbers is excluded
	assert.Len(t, hits, 3)
	assert.Equal(t, "total revenue was $1,200 in fy23", hits[0].Line)
	assert.Equal(t, []string{"1,200"}, hits[0].Numbers)
	assert.Equal(t, []string{"1,200"}, hits[1].Numbers)
	assert.Equal(t, []string{"1,400"}, hits[2].Numbers)
}

func TestFindMetricLinesDuplicatePerPhrase(t *testing.T) {
	// one line matching several phrases of the metric appears once per phrase
	hits := FindMetricLines("net sales and total revenue came to 900", KeywordsFor(dto.MetricRevenue))
	assert.Len(t, hits, 4)
	for _, hit := range hits {
		assert.Equal(t, []string{"900"}, hit.Numbers)
	}
}

func TestDetectCurrencySymbolOrder(t *testing.T) {
	assert.Equal(t, "₹", DetectCurrency("amount ₹12,00,000", nil))
	// list order wins over text position
	assert.Equal(t, "₹", DetectCurrency("paid $100 and ₹200", nil))
	assert.Equal(t, "$", DetectCurrency("total $500", nil))
}

func TestDetectCurrencyCode(t *testing.T) {
	assert.Equal(t, "USD", DetectCurrency("all amounts in USD thousands", nil))
	assert.Equal(t, "EUR", DetectCurrency("reported in eur", nil))
}

func TestDetectCurrencyFromTables(t *testing.T) {
	tables := []dto.Table{
		{Headers: []string{"Metric", "Value"}, Rows: [][]string{{"Revenue", "$100"}}},
	}
	assert.Equal(t, "symbolic", DetectCurrency("no signal in text", tables))
}

func TestDetectCurrencyNone(t *testing.T) {
	assert.Equal(t, "", DetectCurrency("nothing here", nil))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

func TestExtractYearlyDataFromHeaders(t *testing.T) {
	tables := []dto.Table{
		{
			Headers: []string{"Metric", "2022", "2023"},
			Rows: [][]string{
				{"Revenue", "100", "150"},
				{"Net Income", "(20)", "30"},
			},
		},
	}

	series := ExtractYearlyData(tables)

	assert.Equal(t, 100.0, series["2022"][dto.MetricRevenue])
	assert.Equal(t, 150.0, series["2023"][dto.MetricRevenue])
	assert.Equal(t, -20.0, series["2022"][dto.MetricNetIncome])
	assert.Equal(t, 30.0, series["2023"][dto.MetricNetIncome])
}

func TestExtractYearlyDataFirstRowFallback(t *testing.T) {
	tables := []dto.Table{
		{
			Headers: []string{"", "", ""},
			Rows: [][]string{
				{"Particulars", "FY22", "FY23"},
				{"Total Revenue", "1,000", "1,200"},
			},
		},
	}

	series := ExtractYearlyData(tables)

	// the year-bearing row acts as a header and is not scanned for metrics
	assert.Len(t, series, 2)
	assert.Equal(t, 1000.0, series["FY22"][dto.MetricRevenue])
	assert.Equal(t, 1200.0, series["FY23"][dto.MetricRevenue])
}

func TestExtractYearlyDataSkipsTablesWithoutYears(t *testing.T) {
	tables := []dto.Table{
		{
			Headers: []string{"Metric", "Value"},
			Rows:    [][]string{{"Revenue", "100"}},
		},
	}

	assert.Empty(t, ExtractYearlyData(tables))
}

func TestExtractYearlyDataCurrencyAndParens(t *testing.T) {
	tables := []dto.Table{
		{
			Headers: []string{"Metric", "2023"},
			Rows: [][]string{
				{"Net Income", "($1,250)"},
				{"Total Assets", "₹5,000"},
			},
		},
	}

	series := ExtractYearlyData(tables)

	assert.Equal(t, -1250.0, series["2023"][dto.MetricNetIncome])
	assert.Equal(t, 5000.0, series["2023"][dto.MetricTotalAssets])
}

func TestExtractYearlyDataRowMatchesOneMetricOnly(t *testing.T) {
	// "cost of revenue" also contains "revenue"; the first catalog match wins
	// and the row contributes to exactly one metric
	tables := []dto.Table{
		{
			Headers: []string{"Metric", "2023"},
			Rows:    [][]string{{"Cost of Revenue", "400"}},
		},
	}

	series := ExtractYearlyData(tables)

	assert.Equal(t, 400.0, series["2023"][dto.MetricRevenue])
	assert.NotContains(t, series["2023"], dto.MetricCostOfRevenue)
}

func TestExtractYearlyDataLaterTableWins(t *testing.T) {
	tables := []dto.Table{
		{Headers: []string{"Metric", "2023"}, Rows: [][]string{{"Revenue", "100"}}},
		{Headers: []string{"Metric", "2023"}, Rows: [][]string{{"Revenue", "250"}}},
	}

	series := ExtractYearlyData(tables)
	assert.Equal(t, 250.0, series["2023"][dto.MetricRevenue])
}

func TestExtractYearlyDataRaggedRow(t *testing.T) {
	tables := []dto.Table{
		{
			Headers: []string{"Metric", "2022", "2023"},
			Rows:    [][]string{{"Revenue", "100"}}, // 2023 cell missing
		},
	}

	series := ExtractYearlyData(tables)

	assert.Equal(t, 100.0, series["2022"][dto.MetricRevenue])
	assert.NotContains(t, series, "2023")
}

func TestLatestYearLabel(t *testing.T) {
	series := dto.YearlySeries{
		"2022": {}, "2023": {},
	}
	assert.Equal(t, "2023", LatestYearLabel(series))

	// numeric normalization orders mixed formats that lexicographic
	// comparison cannot
	series = dto.YearlySeries{
		"2023": {}, "FY24": {},
	}
	assert.Equal(t, "FY24", LatestYearLabel(series))

	series = dto.YearlySeries{
		"2022-23": {}, "2021": {},
	}
	assert.Equal(t, "2022-23", LatestYearLabel(series))
}

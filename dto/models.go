package dto

// MetricKey is a canonical identifier for a tracked financial metric.
// The set is closed; extraction never invents new keys.
type MetricKey string

const (
	MetricRevenue            MetricKey = "revenue"
	MetricGrossProfit        MetricKey = "gross_profit"
	MetricOperatingIncome    MetricKey = "operating_income"
	MetricNetIncome          MetricKey = "net_income"
	MetricEBITDA             MetricKey = "ebitda"
	MetricTotalAssets        MetricKey = "total_assets"
	MetricTotalLiabilities   MetricKey = "total_liabilities"
	MetricCashAndEquivalents MetricKey = "cash_and_equivalents"
	MetricCostOfRevenue      MetricKey = "cost_of_revenue"
	MetricTotalEquity        MetricKey = "total_equity"
)

// metricKeyOrder is the canonical key order, used for normalization and for
// deterministic row-label matching.
var metricKeyOrder = []MetricKey{
	MetricRevenue,
	MetricGrossProfit,
	MetricOperatingIncome,
	MetricNetIncome,
	MetricEBITDA,
	MetricTotalAssets,
	MetricTotalLiabilities,
	MetricCashAndEquivalents,
	MetricCostOfRevenue,
	MetricTotalEquity,
}

// MetricKeys returns every canonical metric key in catalog order.
func MetricKeys() []MetricKey {
	keys := make([]MetricKey, len(metricKeyOrder))
	copy(keys, metricKeyOrder)
	return keys
}

// Confidence tags where a metric value came from. It decides overwrite
// precedence only; it is never exposed as a numeric score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"   // sourced from a table cell
	ConfidenceMedium Confidence = "medium" // sourced from free text
)

// Rank orders confidences for precedence comparison.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	}
	return 0
}

// Table is a tabular grid extracted from a PDF or an Excel sheet. Headers and
// Rows are column-aligned. Rows may be ragged; consumers must skip
// out-of-range cells rather than fail the table.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// YearlySeries maps a year label ("2023", "FY23", "2022-23") to the metrics
// found for that year. Only detected metrics are present per year.
type YearlySeries map[string]map[MetricKey]float64

// StructuredDocument is the normalized extraction result for one document.
// Metrics always contains every MetricKey; nil means the value is absent.
// A new upload replaces the whole record, never patches fields.
type StructuredDocument struct {
	Metrics       map[MetricKey]*float64   `json:"metrics"`
	YearlyMetrics YearlySeries             `json:"yearly_metrics"`
	Currency      string                   `json:"currency,omitempty"`
	Confidence    map[MetricKey]Confidence `json:"confidence"`
}

// DocumentContext is one processed upload as held by the document store and
// fed to the Q&A engine.
type DocumentContext struct {
	Name        string             `json:"name"`
	RawText     string             `json:"-"`
	Structured  StructuredDocument `json:"structured"`
	TableCount  int                `json:"table_count"`
	ProcessedAt string             `json:"processed_at"`
}

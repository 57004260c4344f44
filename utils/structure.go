package utils

import (
	"github.com/Aashish23092/financial-doc-qa/dto"
)

// valueSource is one origin of metric values with a single confidence tag.
// Sources are applied in a fixed order through one precedence rule, so the
// table → text → latest-year chain is explicit rather than an accident of
// call order.
type valueSource struct {
	name       string
	confidence dto.Confidence
	values     map[dto.MetricKey]float64
}

// applySource writes each value unless the key is already held at a strictly
// higher confidence. Equal confidence yields to the later source, which is
// how the latest-year pass refreshes values the table scanner found.
func applySource(metrics map[dto.MetricKey]float64, confidence map[dto.MetricKey]dto.Confidence, src valueSource) {
	for key, value := range src.values {
		existing, ok := confidence[key]
		if ok && existing.Rank() > src.confidence.Rank() {
			continue
		}
		metrics[key] = value
		confidence[key] = src.confidence
	}
}

// StructureFinancialData aggregates metrics from raw text and tables into a
// normalized record. Precedence, in order: table cells (high), free-text
// lines (medium, filling gaps only), then the latest year of the multi-year
// series (high, refreshing anything not held above its confidence). The result
// always carries every catalog key; nil marks an absent value. The function
// is pure: same inputs, same output, no retained state.
func StructureFinancialData(rawText string, tables []dto.Table) dto.StructuredDocument {
	metrics := make(map[dto.MetricKey]float64)
	confidence := make(map[dto.MetricKey]dto.Confidence)

	applySource(metrics, confidence, valueSource{
		name:       "tables",
		confidence: dto.ConfidenceHigh,
		values:     ScanTables(tables),
	})

	applySource(metrics, confidence, valueSource{
		name:       "text",
		confidence: dto.ConfidenceMedium,
		values:     textCandidates(rawText),
	})

	yearly := ExtractYearlyData(tables)
	if len(yearly) > 0 {
		applySource(metrics, confidence, valueSource{
			name:       "latest-year",
			confidence: dto.ConfidenceHigh,
			values:     yearly[LatestYearLabel(yearly)],
		})
	}

	normalized := make(map[dto.MetricKey]*float64, len(dto.MetricKeys()))
	for _, key := range dto.MetricKeys() {
		if v, ok := metrics[key]; ok {
			value := v
			normalized[key] = &value
		} else {
			normalized[key] = nil
		}
	}

	return dto.StructuredDocument{
		Metrics:       normalized,
		YearlyMetrics: yearly,
		Currency:      DetectCurrency(rawText, tables),
		Confidence:    confidence,
	}
}

// textCandidates derives one candidate value per metric from free text: the
// last numeric substring of the first line that matched any of the metric's
// phrases.
func textCandidates(rawText string) map[dto.MetricKey]float64 {
	candidates := make(map[dto.MetricKey]float64)
	for _, entry := range MetricCatalog {
		hits := FindMetricLines(rawText, entry.Phrases)
		if len(hits) == 0 {
			continue
		}
		nums := hits[0].Numbers
		if v, ok := ParseNumeric(nums[len(nums)-1]); ok {
			candidates[entry.Key] = v
		}
	}
	return candidates
}

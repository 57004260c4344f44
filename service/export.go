package service

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// ExportCSV renders a stored document's metrics as CSV: one row per catalog
// metric (empty value when absent), followed by the per-year series.
func (s *DocumentService) ExportCSV(name string) ([]byte, error) {
	doc, ok := s.store.Get(name)
	if !ok {
		return nil, dto.ErrDocumentNotFound
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"metric", "value", "confidence"})
	for _, key := range dto.MetricKeys() {
		value := ""
		if v := doc.Structured.Metrics[key]; v != nil {
			value = strconv.FormatFloat(*v, 'f', -1, 64)
		}
		w.Write([]string{string(key), value, string(doc.Structured.Confidence[key])})
	}

	if len(doc.Structured.YearlyMetrics) > 0 {
		w.Write([]string{})
		w.Write([]string{"year", "metric", "value"})

		years := make([]string, 0, len(doc.Structured.YearlyMetrics))
		for year := range doc.Structured.YearlyMetrics {
			years = append(years, year)
		}
		sort.Strings(years)

		for _, year := range years {
			for _, key := range dto.MetricKeys() {
				if v, ok := doc.Structured.YearlyMetrics[year][key]; ok {
					w.Write([]string{year, string(key), strconv.FormatFloat(v, 'f', -1, 64)})
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

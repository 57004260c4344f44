package utils

import (
	"strings"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// MetricLine is one raw-text line that matched a metric keyword and carries
// at least one numeric substring.
type MetricLine struct {
	Line    string
	Numbers []string
}

// FindMetricLines scans raw text for lines containing any of the given
// keyword phrases together with at least one numeric value. Hits are returned
// in document order; a line matching several phrases appears once per phrase.
func FindMetricLines(text string, phrases []string) []MetricLine {
	var hits []MetricLine
	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		for _, phrase := range phrases {
			if !strings.Contains(line, phrase) {
				continue
			}
			nums := FindNumericSubstrings(line)
			if len(nums) > 0 {
				hits = append(hits, MetricLine{Line: strings.TrimSpace(line), Numbers: nums})
			}
		}
	}
	return hits
}

// ScanTables extracts one value per metric from tabular grids.
//
// For every (metric, table) pair two independent passes run: a header pass
// (keyword in a lowercased column header → first numeric cell top-down in
// that column) and a row-label pass (keyword in the lowercased first cell →
// first numeric cell across the row). Both passes may assign; the last
// assignment wins, so a row-label hit overrides a header hit in the same
// table and later tables override earlier ones. There is no ranking across
// candidate cells.
func ScanTables(tables []dto.Table) map[dto.MetricKey]float64 {
	results := make(map[dto.MetricKey]float64)

	for _, entry := range MetricCatalog {
		for _, table := range tables {
			scanHeaderColumns(table, entry, results)
			scanRowLabels(table, entry, results)
		}
	}
	return results
}

func scanHeaderColumns(table dto.Table, entry MetricKeywords, results map[dto.MetricKey]float64) {
	for colIdx, header := range table.Headers {
		if !containsAny(strings.ToLower(header), entry.Phrases) {
			continue
		}
		for _, row := range table.Rows {
			if colIdx >= len(row) {
				continue // ragged row, skip the cell
			}
			cell := row[colIdx]
			if !ContainsNumber(cell) {
				continue
			}
			if v, ok := ParseNumeric(cell); ok {
				results[entry.Key] = v
			}
			break // first numeric-looking cell in the column only
		}
	}
}

func scanRowLabels(table dto.Table, entry MetricKeywords, results map[dto.MetricKey]float64) {
	for _, row := range table.Rows {
		if len(row) == 0 {
			continue
		}
		if !containsAny(strings.ToLower(row[0]), entry.Phrases) {
			continue
		}
		for _, cell := range row {
			if !ContainsNumber(cell) {
				continue
			}
			if v, ok := ParseNumeric(cell); ok {
				results[entry.Key] = v
			}
			break
		}
	}
}

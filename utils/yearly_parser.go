package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// yearLabelPattern recognizes year-like column labels: a four-digit year
// beginning with "20", "FY" plus two digits, or a four-digit/two-digit
// slash-or-dash range like "2022-23". The first non-empty group is the label.
var yearLabelPattern = regexp.MustCompile(`(20\d{2})|(FY\s*\d{2})|(\d{4}[-/]\d{2})`)

// parenthesizedPattern detects accounting-style negative cells.
var parenthesizedPattern = regexp.MustCompile(`\(.*\)`)

// cellNoiseReplacer strips currency symbols, parentheses and commas from a
// table cell before numeric parsing.
var cellNoiseReplacer = strings.NewReplacer(
	"(", "", ")", "", "$", "", "₹", "", "€", "", "£", "", "¥", "", ",", "",
)

type yearColumn struct {
	index int
	label string
}

// ExtractYearlyData builds a per-year metric series from tabular grids.
//
// Year columns are detected in the headers; when no header matches, the first
// data row is scanned instead and then excluded from metric matching (it is
// acting as a header). A table without year columns contributes nothing.
// Each data row contributes to at most one metric: the first catalog entry
// whose phrase appears in the row label. Later tables overwrite earlier ones
// for the same (year, metric) pair.
func ExtractYearlyData(tables []dto.Table) dto.YearlySeries {
	series := make(dto.YearlySeries)

	for _, table := range tables {
		yearCols := detectYearColumns(table.Headers)
		dataRows := table.Rows
		if len(yearCols) == 0 && len(table.Rows) > 0 {
			yearCols = detectYearColumns(table.Rows[0])
			dataRows = table.Rows[1:]
		}
		if len(yearCols) == 0 {
			continue
		}

		for _, row := range dataRows {
			if len(row) == 0 {
				continue
			}
			label := strings.TrimSpace(strings.ToLower(row[0]))
			for _, entry := range MetricCatalog {
				if !containsAny(label, entry.Phrases) {
					continue
				}
				for _, yc := range yearCols {
					if yc.index >= len(row) {
						continue // ragged row, skip the cell
					}
					cell := row[yc.index]
					if strings.TrimSpace(cell) == "" {
						continue
					}
					if v, ok := parseYearCell(cell); ok {
						if series[yc.label] == nil {
							series[yc.label] = make(map[dto.MetricKey]float64)
						}
						series[yc.label][entry.Key] = v
					}
				}
				break // a row contributes to at most one metric
			}
		}
	}
	return series
}

func detectYearColumns(cells []string) []yearColumn {
	var cols []yearColumn
	for idx, cell := range cells {
		m := yearLabelPattern.FindStringSubmatch(cell)
		if m == nil {
			continue
		}
		label := m[1]
		if label == "" {
			label = m[2]
		}
		if label == "" {
			label = m[3]
		}
		cols = append(cols, yearColumn{index: idx, label: label})
	}
	return cols
}

// parseYearCell cleans a table cell (currency symbols, parentheses, commas)
// and re-applies the leading minus when the cell was parenthesized.
func parseYearCell(cell string) (float64, bool) {
	wasNegative := parenthesizedPattern.MatchString(cell)
	cleaned := strings.TrimSpace(cellNoiseReplacer.Replace(cell))
	if wasNegative && !strings.HasPrefix(cleaned, "-") {
		cleaned = "-" + cleaned
	}
	return ParseNumeric(cleaned)
}

// LatestYearLabel picks the most recent label in a series. Labels are
// normalized to a numeric year ("FY23" → 2023, "2022-23" → 2022) and compared
// numerically; plain lexicographic comparison is only the tie-breaker, since
// it cannot order mixed formats like "FY24" against "2023".
func LatestYearLabel(series dto.YearlySeries) string {
	best := ""
	bestYear := -1
	for label := range series {
		year := normalizeYearLabel(label)
		if best == "" ||
			year > bestYear ||
			(year == bestYear && label > best) {
			best = label
			bestYear = year
		}
	}
	return best
}

var (
	fullYearPattern  = regexp.MustCompile(`^(20\d{2})$`)
	fyYearPattern    = regexp.MustCompile(`^FY\s*(\d{2})$`)
	rangeYearPattern = regexp.MustCompile(`^(\d{4})[-/]\d{2}$`)
)

// normalizeYearLabel maps a year label to a comparable integer year, or -1
// when the label fits none of the recognized shapes.
func normalizeYearLabel(label string) int {
	if m := fullYearPattern.FindStringSubmatch(label); m != nil {
		y, _ := strconv.Atoi(m[1])
		return y
	}
	if m := fyYearPattern.FindStringSubmatch(label); m != nil {
		y, _ := strconv.Atoi(m[1])
		return 2000 + y
	}
	if m := rangeYearPattern.FindStringSubmatch(label); m != nil {
		y, _ := strconv.Atoi(m[1])
		return y
	}
	return -1
}

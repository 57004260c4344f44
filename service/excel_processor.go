package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// ExcelProcessor extracts tabular grids and a text rendering from an Excel
// workbook (.xlsx/.xls).
type ExcelProcessor interface {
	Extract(data []byte) (string, []dto.Table, error)
}

type excelProcessor struct{}

func NewExcelProcessor() ExcelProcessor {
	return &excelProcessor{}
}

// Extract turns every non-empty sheet into one table (first row as header)
// and renders sheet content as tab-separated lines so the free-text scanner
// can match spreadsheet rows too.
func (p *excelProcessor) Extract(data []byte) (string, []dto.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	var tables []dto.Table

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		table := dto.Table{Headers: rows[0]}
		if len(rows) > 1 {
			table.Rows = rows[1:]
		}
		tables = append(tables, table)

		textBuilder.WriteString("Sheet: " + sheet + "\n")
		for _, row := range rows {
			textBuilder.WriteString(strings.Join(row, "\t"))
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), tables, nil
}

package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// PDFProcessor extracts the text layer, tabular grids and page images from a
// PDF document.
type PDFProcessor interface {
	Extract(pdfData []byte) (string, []dto.Table, error)
	ExtractImages(pdfData []byte) ([]image.Image, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// columnGap is the horizontal distance (in PDF points) between two words that
// is treated as a column boundary when rebuilding table rows.
const columnGap = 12.0

// Extract reads the PDF text layer row by row. Words separated by a wide
// horizontal gap are treated as separate cells; runs of consecutive
// multi-cell rows are grouped into tables, with the first row of each run as
// the header.
func (p *pdfProcessor) Extract(pdfData []byte) (string, []dto.Table, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var textBuilder strings.Builder
	var cellRows [][]string

	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue // page without a text layer
		}
		for _, row := range rows {
			cells := splitRowIntoCells(row)
			if len(cells) == 0 {
				continue
			}
			textBuilder.WriteString(strings.Join(cells, "  "))
			textBuilder.WriteString("\n")
			cellRows = append(cellRows, cells)
		}
	}

	return textBuilder.String(), groupCellRows(cellRows), nil
}

// splitRowIntoCells joins adjacent words of a text row and starts a new cell
// whenever the horizontal gap to the previous word exceeds columnGap.
func splitRowIntoCells(row *pdf.Row) []string {
	var cells []string
	var current strings.Builder
	lastEnd := 0.0

	for i, word := range row.Content {
		if i > 0 && word.X-lastEnd > columnGap {
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		} else if i > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word.S)
		lastEnd = word.X + word.W
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		cells = append(cells, s)
	}
	return cells
}

// groupCellRows turns maximal runs of consecutive multi-cell rows into
// tables. A run needs at least a header row and one data row to count.
func groupCellRows(cellRows [][]string) []dto.Table {
	var tables []dto.Table
	var block [][]string

	flush := func() {
		if len(block) >= 2 {
			tables = append(tables, dto.Table{Headers: block[0], Rows: block[1:]})
		}
		block = nil
	}

	for _, cells := range cellRows {
		if len(cells) >= 2 {
			block = append(block, cells)
		} else {
			flush()
		}
	}
	flush()
	return tables
}

// ExtractImages pulls embedded page images out of the PDF, for OCR of
// scanned statements that carry no text layer.
func (p *pdfProcessor) ExtractImages(pdfData []byte) ([]image.Image, error) {
	tempDir, err := os.MkdirTemp("", "pdf_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "doc-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []image.Image
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		imgFile, err := os.Open(filepath.Join(tempDir, file.Name()))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}
		images = append(images, img)
	}
	return images, nil
}

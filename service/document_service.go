package service

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aashish23092/financial-doc-qa/dto"
	"github.com/Aashish23092/financial-doc-qa/utils"
)

// OCRClient recognizes text on a statement page image. Used only as a
// fallback for scanned PDFs without a text layer.
type OCRClient interface {
	ExtractTextFromImage(imagePath string) (string, error)
}

// minTextLayerChars is the threshold below which a PDF is treated as scanned
// and routed through OCR.
const minTextLayerChars = 20

type DocumentService struct {
	pdfProcessor   PDFProcessor
	excelProcessor ExcelProcessor
	ocrClient      OCRClient
	store          *DocumentStore
	maxFileSize    int64
}

func NewDocumentService(
	pdfProcessor PDFProcessor,
	excelProcessor ExcelProcessor,
	ocrClient OCRClient,
	store *DocumentStore,
	maxFileSize int64,
) *DocumentService {
	return &DocumentService{
		pdfProcessor:   pdfProcessor,
		excelProcessor: excelProcessor,
		ocrClient:      ocrClient,
		store:          store,
		maxFileSize:    maxFileSize,
	}
}

// ProcessUpload extracts text and tables from an uploaded document,
// structures the financial data and stores the result. A document with the
// same name replaces the previous record as a whole.
func (s *DocumentService) ProcessUpload(filename string, data []byte) (dto.DocumentContext, bool, error) {
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return dto.DocumentContext{}, false, dto.ErrFileTooLarge
	}

	rawText, tables, err := s.extract(filename, data)
	if err != nil {
		return dto.DocumentContext{}, false, err
	}
	if strings.TrimSpace(rawText) == "" && len(tables) == 0 {
		return dto.DocumentContext{}, false, dto.ErrEmptyDocument
	}

	structured := utils.StructureFinancialData(rawText, tables)

	doc := dto.DocumentContext{
		Name:        filename,
		RawText:     rawText,
		Structured:  structured,
		TableCount:  len(tables),
		ProcessedAt: time.Now().Format(time.RFC3339),
	}
	replaced := s.store.Put(doc)

	log.Printf("Processed %s: %d tables, %d yearly labels, currency %q",
		filename, len(tables), len(structured.YearlyMetrics), structured.Currency)
	return doc, replaced, nil
}

func (s *DocumentService) extract(filename string, data []byte) (string, []dto.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return s.extractPDF(filename, data)
	case ".xlsx", ".xls":
		return s.excelProcessor.Extract(data)
	default:
		return "", nil, dto.ErrUnsupportedFileType
	}
}

// extractPDF reads the text layer first. When the document appears to be
// scanned it falls back to OCR over the extracted page images; OCR output
// contributes raw text only, no table grids.
func (s *DocumentService) extractPDF(filename string, data []byte) (string, []dto.Table, error) {
	rawText, tables, err := s.pdfProcessor.Extract(data)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filename, err)
	}
	if len(strings.TrimSpace(rawText)) >= minTextLayerChars {
		return rawText, tables, nil
	}

	log.Printf("PDF %s has minimal text, attempting image-based OCR", filename)
	images, imgErr := s.pdfProcessor.ExtractImages(data)
	if imgErr != nil || len(images) == 0 {
		if err != nil {
			return "", nil, fmt.Errorf("pdf extraction failed: %w", err)
		}
		return rawText, tables, nil
	}

	var combined strings.Builder
	for _, img := range images {
		tempImg, err := saveImageToTempFile(img)
		if err != nil {
			log.Printf("Failed to save temporary image for OCR: %v", err)
			continue
		}

		pageText, ocrErr := s.ocrClient.ExtractTextFromImage(tempImg)
		os.Remove(tempImg)
		if ocrErr != nil {
			log.Printf("OCR failed for a page in %s: %v", filename, ocrErr)
			continue
		}

		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	if strings.TrimSpace(combined.String()) != "" {
		rawText = combined.String()
	}
	return rawText, tables, nil
}

// ListDocuments returns every stored document.
func (s *DocumentService) ListDocuments() []dto.DocumentContext {
	return s.store.List()
}

// GetDocument returns one stored document by name.
func (s *DocumentService) GetDocument(name string) (dto.DocumentContext, error) {
	doc, ok := s.store.Get(name)
	if !ok {
		return dto.DocumentContext{}, dto.ErrDocumentNotFound
	}
	return doc, nil
}

// ClearDocuments drops all stored documents.
func (s *DocumentService) ClearDocuments() {
	s.store.Clear()
}

// saveImageToTempFile writes an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return tempFile.Name(), nil
}

package client

import (
	"fmt"
	"log"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs Tesseract OCR over statement page images. It is only
// used for scanned PDFs whose text layer is empty.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// ExtractTextFromImage extracts text from a page image on disk.
func (tc *TesseractClient) ExtractTextFromImage(imagePath string) (string, error) {
	c := gosseract.NewClient()
	defer c.Close()

	if tc.dataPath != "" {
		c.SetTessdataPrefix(tc.dataPath)
	}
	if err := c.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := c.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}

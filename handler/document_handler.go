package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/financial-doc-qa/dto"
	"github.com/Aashish23092/financial-doc-qa/service"
)

type DocumentHandler struct {
	documentService *service.DocumentService
}

func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// Upload handles POST /documents: one PDF/Excel file in the "file" field.
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read file", err)
		return
	}

	log.Printf("Processing upload %s (%d bytes)", header.Filename, len(data))

	doc, replaced, err := h.documentService.ProcessUpload(header.Filename, data)
	if err != nil {
		h.sendError(c, statusForError(err), "Failed to process document", err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{Document: doc, Replaced: replaced})
}

// List handles GET /documents.
func (h *DocumentHandler) List(c *gin.Context) {
	docs := h.documentService.ListDocuments()
	c.JSON(http.StatusOK, dto.DocumentListResponse{Documents: docs, Count: len(docs)})
}

// Clear handles DELETE /documents.
func (h *DocumentHandler) Clear(c *gin.Context) {
	h.documentService.ClearDocuments()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// Get handles GET /documents/:name.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c.Param("name"))
	if err != nil {
		h.sendError(c, http.StatusNotFound, "Document not found", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ExportCSV handles GET /documents/:name/export.
func (h *DocumentHandler) ExportCSV(c *gin.Context) {
	name := c.Param("name")
	data, err := h.documentService.ExportCSV(name)
	if err != nil {
		h.sendError(c, http.StatusNotFound, "Document not found", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, dto.ErrUnsupportedFileType),
		errors.Is(err, dto.ErrFileTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, dto.ErrEmptyDocument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dto.ErrDocumentNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// sendError sends a structured error response
func (h *DocumentHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "DOCUMENT_PROCESSING_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/financial-doc-qa/dto"
	"github.com/Aashish23092/financial-doc-qa/service"
)

type ChatHandler struct {
	qaService *service.QAService
}

func NewChatHandler(qaService *service.QAService) *ChatHandler {
	return &ChatHandler{
		qaService: qaService,
	}
}

// Ask handles POST /chat: answers a question about the uploaded documents.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	response := h.qaService.Ask(c.Request.Context(), &req)
	c.JSON(http.StatusOK, response)
}

func (h *ChatHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "CHAT_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Aashish23092/financial-doc-qa/client"
	"github.com/Aashish23092/financial-doc-qa/config"
	"github.com/Aashish23092/financial-doc-qa/handler"
	"github.com/Aashish23092/financial-doc-qa/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize clients
	ollamaClient := client.NewOllamaClient(
		cfg.OllamaURL,
		client.WithOllamaModel(cfg.OllamaModel),
		client.WithOllamaTimeout(cfg.OllamaTimeout),
	)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize document store and service layer
	store := service.NewDocumentStore(cfg.DocumentTTL)
	documentService := service.NewDocumentService(
		service.NewPDFProcessor(),
		service.NewExcelProcessor(),
		tesseractClient,
		store,
		cfg.MaxFileSize,
	)
	qaService := service.NewQAService(ollamaClient, store)

	// Initialize handler layer
	documentHandler := handler.NewDocumentHandler(documentService)
	chatHandler := handler.NewChatHandler(qaService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Financial Document Q&A",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		documents := api.Group("/documents")
		{
			documents.POST("", documentHandler.Upload)
			documents.GET("", documentHandler.List)
			documents.DELETE("", documentHandler.Clear)
			documents.GET("/:name", documentHandler.Get)
			documents.GET("/:name/export", documentHandler.ExportCSV)
		}
		api.POST("/chat", chatHandler.Ask)
	}

	// Start server
	log.Printf("Starting Financial Document Q&A Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

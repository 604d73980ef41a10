package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mk-manish1105/TruthMark/internal/analyzer"
	"github.com/mk-manish1105/TruthMark/models"
)

// newRouter builds the gin engine with CORS, docs, and analysis routes.
// The analyzer is injected so tests can run against a stub classifier.
func newRouter(a *analyzer.Analyzer) *gin.Engine {
	router := gin.Default()

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "analyzer-api",
		})
	})

	// Analysis endpoints
	router.POST("/analyze-text", handleAnalyzeText(a))
	router.POST("/analyze-batch", handleAnalyzeBatch(a))

	return router
}

// handleAnalyzeText processes a single-passage analysis request
// @Summary      Analyze text
// @Description  Score a passage for likelihood of AI authorship
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Param        request body     models.AnalyzeRequest true "Text to analyze (50-350 words)"
// @Success      200     {object} models.AnalyzeResponse
// @Failure      400     {object} models.ErrorResponse
// @Failure      502     {object} models.ErrorResponse
// @Router       /analyze-text [post]
func handleAnalyzeText(a *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.AnalyzeRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "Invalid request body",
				Error:   err.Error(),
			})
			return
		}

		text, _, err := analyzer.Validate(request.Text)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
				Error:   "validation_error",
			})
			return
		}

		response, err := a.Analyze(c.Request.Context(), text)
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Status:  http.StatusBadGateway,
				Message: "Classifier inference failed",
				Error:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

// handleAnalyzeBatch processes multiple passages in one request
// @Summary      Analyze a batch of texts
// @Description  Score multiple passages; failures are reported per item
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Param        request body     models.BatchAnalyzeRequest true "Texts to analyze"
// @Success      200     {object} models.BatchAnalyzeResponse
// @Failure      400     {object} models.ErrorResponse
// @Router       /analyze-batch [post]
func handleAnalyzeBatch(a *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.BatchAnalyzeRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "Invalid request body",
				Error:   err.Error(),
			})
			return
		}
		if len(request) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "Batch must contain at least one text",
				Error:   "empty_batch",
			})
			return
		}

		response := make(models.BatchAnalyzeResponse, 0, len(request))
		for _, item := range request {
			text, _, err := analyzer.Validate(item.Text)
			if err != nil {
				response = append(response, models.BatchAnalyzeItem{Error: err.Error()})
				continue
			}
			result, err := a.Analyze(c.Request.Context(), text)
			if err != nil {
				response = append(response, models.BatchAnalyzeItem{Error: "Classifier inference failed"})
				continue
			}
			response = append(response, models.BatchAnalyzeItem{Result: result})
		}

		c.JSON(http.StatusOK, response)
	}
}

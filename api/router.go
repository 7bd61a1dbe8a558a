package api

import (
	"net/http"

	"sales_forecast/internal/forecast"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes registers all dataset and forecast endpoints on the given Gin
// engine. It initializes the storage, service, and handler, then binds each
// HTTP method and path to the appropriate handler function.
func InitRoutes(e *gin.Engine) {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	storage := forecast.NewLocalStorage()
	service := forecast.NewService(storage, logger)
	handler := NewForecastHandler(service, logger)

	e.POST("/datasets", handler.handleUploadDataset)
	e.GET("/datasets", handler.handleListDatasets)
	e.GET("/datasets/:id/countries", handler.handleGetCountries)
	e.GET("/datasets/:id/forecast", handler.handleForecast)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

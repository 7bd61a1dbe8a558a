package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"sales_forecast/internal/forecast"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Defaults applied when the caller omits query parameters. 30 days matches
// the horizon most dashboards ask for; 10 products fills the revenue chart.
const (
	defaultHorizonDays = 30
	defaultTopProducts = 10
)

// forecastHandler holds the forecast service and implements HTTP handlers
// for dataset upload and pipeline queries.
type forecastHandler struct {
	service *forecast.Service
	logger  *zap.Logger
}

// NewForecastHandler creates a new forecast handler.
func NewForecastHandler(service *forecast.Service, logger *zap.Logger) *forecastHandler {
	return &forecastHandler{
		service: service,
		logger:  logger,
	}
}

// handleUploadDataset handles the POST /datasets endpoint: a multipart
// upload of a CSV or XLSX sales export.
func (h *forecastHandler) handleUploadDataset(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open upload", zap.String("filename", fileHeader.Filename), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	var table *forecast.Table
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		table, err = forecast.ReadCSV(file)
	case ".xlsx":
		table, err = forecast.ReadXLSX(file)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, expected .csv or .xlsx"})
		return
	}
	if err != nil {
		h.logger.Warn("failed to parse upload", zap.String("filename", fileHeader.Filename), zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse upload: " + err.Error()})
		return
	}

	ds, err := h.service.CreateDataset(fileHeader.Filename, table)
	if err != nil {
		if errors.Is(err, forecast.ErrMissingColumn) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create dataset", zap.String("filename", fileHeader.Filename), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create dataset"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"dataset_id":   ds.ID,
		"name":         ds.Name,
		"rows_loaded":  len(ds.Records),
		"rows_dropped": ds.RowsDropped,
		"countries":    forecast.DistinctCountries(ds.Records),
	})
}

// handleListDatasets handles the GET /datasets endpoint.
func (h *forecastHandler) handleListDatasets(ctx *gin.Context) {
	datasets, err := h.service.ListDatasets()
	if err != nil {
		h.logger.Error("failed to list datasets", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list datasets"})
		return
	}

	results := make([]gin.H, 0, len(datasets))
	for _, ds := range datasets {
		results = append(results, gin.H{
			"dataset_id":   ds.ID,
			"name":         ds.Name,
			"rows_loaded":  len(ds.Records),
			"rows_dropped": ds.RowsDropped,
			"created_at":   ds.CreatedAt,
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"results": results})
}

// handleGetCountries handles the GET /datasets/:id/countries endpoint,
// feeding the country selector of whatever renders the results.
func (h *forecastHandler) handleGetCountries(ctx *gin.Context) {
	countries, err := h.service.Countries(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, forecast.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
			return
		}
		h.logger.Error("failed to get countries", zap.String("dataset_id", ctx.Param("id")), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"countries": countries})
}

// handleForecast handles the GET /datasets/:id/forecast endpoint and returns
// the full pipeline result for one country and horizon.
func (h *forecastHandler) handleForecast(ctx *gin.Context) {
	country := ctx.Query("country")
	if country == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing country parameter"})
		return
	}

	horizonDays, err := strconv.Atoi(ctx.DefaultQuery("horizon_days", strconv.Itoa(defaultHorizonDays)))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "horizon_days must be an integer"})
		return
	}
	topN, err := strconv.Atoi(ctx.DefaultQuery("top_n", strconv.Itoa(defaultTopProducts)))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "top_n must be an integer"})
		return
	}

	cfg := forecast.ForecastConfig{Country: country, HorizonDays: horizonDays}
	result, err := h.service.RunPipeline(ctx.Param("id"), cfg, topN)
	if err != nil {
		switch {
		case errors.Is(err, forecast.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		case errors.Is(err, forecast.ErrInvalidHorizon):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, forecast.ErrEmptyDataset):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, forecast.ErrInsufficientHistory):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("pipeline failed",
				zap.String("dataset_id", ctx.Param("id")),
				zap.String("country", country),
				zap.Error(err),
			)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

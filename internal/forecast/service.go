package forecast

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidHorizon is returned when the requested horizon is outside the
// allowed range. It is a caller contract violation, not a runtime condition.
var ErrInvalidHorizon = errors.New("invalid forecast horizon")

// ErrEmptyDataset is returned when no valid rows survive cleaning or no rows
// match the selected country.
var ErrEmptyDataset = errors.New("empty dataset")

// Service runs the cleaning, aggregation and forecasting pipeline over
// datasets held in a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// CreateDataset cleans a raw table and registers it for querying. A table
// with zero valid rows is stored as an empty dataset rather than rejected;
// pipeline runs against it surface ErrEmptyDataset.
func (s *Service) CreateDataset(name string, table *Table) (*Dataset, error) {
	records, dropped, err := Clean(table)
	if err != nil {
		s.logger.Warn("failed to clean dataset", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	ds := &Dataset{
		ID:          uuid.NewString(),
		Name:        name,
		Records:     records,
		RowsDropped: dropped,
		CreatedAt:   time.Now(),
	}
	if err := s.storage.Set(ds); err != nil {
		s.logger.Error("failed to save dataset", zap.String("dataset_id", ds.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save dataset: %w", err)
	}

	s.logger.Info("dataset created",
		zap.String("dataset_id", ds.ID),
		zap.String("name", name),
		zap.Int("rows_loaded", len(records)),
		zap.Int("rows_dropped", dropped),
	)
	return ds, nil
}

// Countries returns the sorted distinct countries of a dataset.
func (s *Service) Countries(datasetID string) ([]string, error) {
	ds, err := s.storage.Read(datasetID)
	if err != nil {
		return nil, err
	}
	return DistinctCountries(ds.Records), nil
}

// ListDatasets returns every registered dataset, oldest first.
func (s *Service) ListDatasets() ([]*Dataset, error) {
	datasets, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(datasets, func(i, j int) bool {
		return datasets[i].CreatedAt.Before(datasets[j].CreatedAt)
	})
	return datasets, nil
}

// RunPipeline executes the full pipeline for one stored dataset: country
// filter, daily aggregation, trend forecast, summary and product ranking.
func (s *Service) RunPipeline(datasetID string, cfg ForecastConfig, topN int) (*PipelineResult, error) {
	ds, err := s.storage.Read(datasetID)
	if err != nil {
		return nil, err
	}

	result, err := RunPipeline(ds.Records, cfg, topN)
	if err != nil {
		s.logger.Warn("pipeline run rejected",
			zap.String("dataset_id", datasetID),
			zap.String("country", cfg.Country),
			zap.Int("horizon_days", cfg.HorizonDays),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("pipeline completed",
		zap.String("dataset_id", datasetID),
		zap.String("country", cfg.Country),
		zap.Int("horizon_days", cfg.HorizonDays),
		zap.Int("series_days", len(result.DailySeries)),
	)
	return result, nil
}

// RunPipeline is the pure core: it takes cleaned records and a configuration
// and returns the structured results a renderer consumes. The input records
// are never mutated.
func RunPipeline(records []SaleRecord, cfg ForecastConfig, topN int) (*PipelineResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	filtered := FilterByCountry(records, cfg.Country)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no records for country %q", ErrEmptyDataset, cfg.Country)
	}

	series := Aggregate(filtered, cfg.Country)
	points, err := FitAndForecast(series, cfg.HorizonDays)
	if err != nil {
		return nil, err
	}

	return &PipelineResult{
		Country:     cfg.Country,
		DailySeries: series,
		UnitsSeries: series.UnitsSeries(),
		Forecast:    points,
		Summary:     Summarize(series),
		TopProducts: TopProducts(filtered, topN),
	}, nil
}

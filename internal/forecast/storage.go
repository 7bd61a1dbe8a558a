package forecast

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a dataset with the given ID is not found.
var ErrNotFound = errors.New("dataset not found")

// ErrEmptyID is returned when trying to store a dataset with an empty ID.
var ErrEmptyID = errors.New("empty dataset ID")

// Storage is the main interface for the dataset registry.
type Storage interface {
	Set(ds *Dataset) error
	Read(id string) (*Dataset, error)
	GetAll() ([]*Dataset, error)
}

// LocalStorage provides an in-memory implementation for storing datasets.
// Datasets are immutable once stored, so reads only need the read lock.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Dataset
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string]*Dataset{},
	}
}

// Set stores a dataset under its ID.
// Returns ErrEmptyID if the dataset has an empty ID.
func (l *LocalStorage) Set(ds *Dataset) error {
	if ds.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[ds.ID] = ds
	return nil
}

// Read retrieves a dataset from the local storage by ID.
// Returns ErrNotFound if the dataset is not found.
func (l *LocalStorage) Read(id string) (*Dataset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ds, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ds, nil
}

// GetAll retrieves all datasets from the local storage.
func (l *LocalStorage) GetAll() ([]*Dataset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	datasets := make([]*Dataset, 0, len(l.m))
	for _, ds := range l.m {
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

package storage

import (
	"rmt/internal/config"
	"rmt/internal/domain"
)

// Storage persists and loads run summaries (e.g. for the diffs viewer).
type Storage interface {
	Save(summary *domain.RunSummary) error
	Load() (*domain.RunSummary, error)
}

// JSONStorage stores the last run summary in a JSON file under the configured
// summary path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's summary path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"finconsult/domain"
)

// ReportStore writes chart configurations out as report artifacts and
// returns where they landed.
type ReportStore interface {
	Save(name string, config *domain.ChartConfig) (string, error)
}

// FileReportStore writes each chart as an indented JSON file under the
// reports directory, creating the directory on first use.
type FileReportStore struct {
	dir string
}

func NewFileReportStore(dir string) *FileReportStore {
	return &FileReportStore{dir: dir}
}

func (s *FileReportStore) Save(name string, config *domain.ChartConfig) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding chart config: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", name, uuid.NewString()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report file: %w", err)
	}
	return path, nil
}

// MemoryReportStore records saved charts in memory for tests.
type MemoryReportStore struct {
	mu    sync.Mutex
	Saved map[string]*domain.ChartConfig
}

func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{
		Saved: make(map[string]*domain.ChartConfig),
	}
}

func (s *MemoryReportStore) Save(name string, config *domain.ChartConfig) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Saved[name] = config
	return name + ".json", nil
}

package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"finconsult/domain"
)

func TestFileReportStore_Save(t *testing.T) {

	dir := filepath.Join(t.TempDir(), "reports")
	store := NewFileReportStore(dir)

	config := &domain.ChartConfig{
		ChartType: "line",
		Title:     "Break-Even Analysis",
		Series: []domain.ChartSeries{
			{Name: "Total Costs", Data: []domain.ChartPoint{{Label: "0", Value: 50000}}},
		},
	}

	path, err := store.Save("break-even", config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), "break-even-") {
		t.Errorf("unexpected file name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}

	var decoded domain.ChartConfig
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report file is not valid JSON: %v", err)
	}
	if decoded.Title != config.Title {
		t.Errorf("expected title %q, got %q", config.Title, decoded.Title)
	}
}

func TestMemoryCache_TTL(t *testing.T) {

	cache := NewMemoryCache()

	if err := cache.Set("k", "v", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok := cache.Get("k")
	if !ok || val != "v" {
		t.Errorf("expected cached value, got %q (%v)", val, ok)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Errorf("expected miss for unknown key")
	}
}

package service

import (
	"testing"

	"finconsult/domain"
	"finconsult/repository"
)

func TestAdvisorExplain_DisabledFallsBack(t *testing.T) {

	advisor := NewAdvisorService("", repository.NewMemoryCache(), testLogger())

	explanation := advisor.Explain("loan", []domain.Metric{
		{Key: "monthly_payment", Value: 1266.71},
	})
	if explanation == "" {
		t.Errorf("expected a fallback explanation")
	}
}

func TestAdvisorExplain_ServesFromCache(t *testing.T) {

	cache := repository.NewMemoryCache()
	advisor := NewAdvisorService("test-key", cache, testLogger())

	metrics := []domain.Metric{{Key: "roi_percentage", Value: 50}}
	cache.Set(cacheKey("roi", metrics), "cached explanation", 0)

	explanation := advisor.Explain("roi", metrics)
	if explanation != "cached explanation" {
		t.Errorf("expected cached explanation, got %q", explanation)
	}
}

func TestAdvisorCacheKey_Deterministic(t *testing.T) {

	metrics := []domain.Metric{{Key: "roi_percentage", Value: 50}}

	if cacheKey("roi", metrics) != cacheKey("roi", metrics) {
		t.Errorf("expected identical inputs to produce identical keys")
	}
	if cacheKey("roi", metrics) == cacheKey("loan", metrics) {
		t.Errorf("expected different kinds to produce different keys")
	}
}

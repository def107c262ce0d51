package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"finconsult/repository"
	"finconsult/service"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAdvisor() *service.AdvisorService {
	return service.NewAdvisorService("", repository.NewMemoryCache(), testLogger())
}

func TestCalculateLoanHandler_OK(t *testing.T) {

	handler := NewFinanceHandler(service.NewFinanceService(testLogger()), testAdvisor())

	body := []byte(`{
		"principal": 250000,
		"annual_rate": 0.045,
		"years": 30
	}`)

	req := httptest.NewRequest(http.MethodPost, "/finance/loan", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]float64
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["monthly_payment"] != 1266.71 {
		t.Errorf("expected monthly_payment 1266.71, got %.2f", resp["monthly_payment"])
	}
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {

	handler := NewFinanceHandler(service.NewFinanceService(testLogger()), testAdvisor())

	req := httptest.NewRequest(http.MethodGet, "/finance/loan", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {

	handler := NewFinanceHandler(service.NewFinanceService(testLogger()), testAdvisor())

	req := httptest.NewRequest(http.MethodPost, "/finance/loan",
		bytes.NewBuffer([]byte(`{invalid-json}`)))
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateSavingsGoalHandler_ValidationError(t *testing.T) {

	handler := NewFinanceHandler(service.NewFinanceService(testLogger()), testAdvisor())

	body := []byte(`{"target_amount": 50000, "monthly_contribution": 0, "annual_rate": 0.03}`)
	req := httptest.NewRequest(http.MethodPost, "/finance/savings-goal", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.CalculateSavingsGoal(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

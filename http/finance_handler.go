package http

import (
	"encoding/json"
	"net/http"

	"finconsult/domain"
	"finconsult/service"
)

type FinanceHandler struct {
	service *service.FinanceService
	advisor *service.AdvisorService
}

func NewFinanceHandler(service *service.FinanceService, advisor *service.AdvisorService) *FinanceHandler {
	return &FinanceHandler{service: service, advisor: advisor}
}

func (h *FinanceHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input struct {
		domain.LoanInput
		Explain bool `json:"explain,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateLoanPayment(input.LoanInput)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		domain.LoanResult
		Explanation string `json:"explanation,omitempty"`
	}{result, h.explain(input.Explain, "loan", result.Metrics())})
}

func (h *FinanceHandler) CalculateCompoundInterest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input struct {
		domain.CompoundInterestInput
		Explain bool `json:"explain,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateCompoundInterest(input.CompoundInterestInput)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		domain.CompoundInterestResult
		Explanation string `json:"explanation,omitempty"`
	}{result, h.explain(input.Explain, "compound_interest", result.Metrics())})
}

func (h *FinanceHandler) CalculateSavingsGoal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input struct {
		domain.SavingsGoalInput
		Explain bool `json:"explain,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateSavingsGoal(input.SavingsGoalInput)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		domain.SavingsGoalResult
		Explanation string `json:"explanation,omitempty"`
	}{result, h.explain(input.Explain, "savings_goal", result.Metrics())})
}

func (h *FinanceHandler) explain(wanted bool, kind string, metrics []domain.Metric) string {
	if !wanted {
		return ""
	}
	return h.advisor.Explain(kind, metrics)
}

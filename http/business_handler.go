package http

import (
	"encoding/json"
	"net/http"

	"finconsult/domain"
	"finconsult/service"
)

type BusinessHandler struct {
	service *service.BusinessService
	advisor *service.AdvisorService
}

func NewBusinessHandler(service *service.BusinessService, advisor *service.AdvisorService) *BusinessHandler {
	return &BusinessHandler{service: service, advisor: advisor}
}

func (h *BusinessHandler) CalculateROI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input struct {
		domain.ROIInput
		Explain bool `json:"explain,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateROI(input.ROIInput)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		domain.ROIResult
		Explanation string `json:"explanation,omitempty"`
	}{result, h.explain(input.Explain, "roi", result.Metrics())})
}

func (h *BusinessHandler) CalculateBreakEven(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input struct {
		domain.BreakEvenInput
		Explain bool `json:"explain,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateBreakEvenPoint(input.BreakEvenInput)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		domain.BreakEvenResult
		Explanation string `json:"explanation,omitempty"`
	}{result, h.explain(input.Explain, "break_even", result.Metrics())})
}

func (h *BusinessHandler) CalculateProfitMargin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input struct {
		domain.ProfitMarginInput
		Explain bool `json:"explain,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateProfitMargin(input.ProfitMarginInput)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		domain.ProfitMarginResult
		Explanation string `json:"explanation,omitempty"`
	}{result, h.explain(input.Explain, "profit_margin", result.Metrics())})
}

func (h *BusinessHandler) CalculatePayback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input struct {
		domain.PaybackInput
		Explain bool `json:"explain,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculatePaybackPeriod(input.PaybackInput)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		domain.PaybackResult
		Explanation string `json:"explanation,omitempty"`
	}{result, h.explain(input.Explain, "payback", result.Metrics())})
}

func (h *BusinessHandler) CalculateRatios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input struct {
		domain.RatioInput
		Explain bool `json:"explain,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateRatios(input.RatioInput)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		domain.RatioResult
		Explanation string `json:"explanation,omitempty"`
	}{result, h.explain(input.Explain, "ratios", result.Metrics())})
}

func (h *BusinessHandler) explain(wanted bool, kind string, metrics []domain.Metric) string {
	if !wanted {
		return ""
	}
	return h.advisor.Explain(kind, metrics)
}

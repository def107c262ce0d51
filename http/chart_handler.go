package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finconsult/chart"
	"finconsult/domain"
	"finconsult/repository"
	"finconsult/service"
)

// ChartHandler builds render-ready chart configs and optionally persists
// them through the report store (?save=1).
type ChartHandler struct {
	store repository.ReportStore
	log   *logrus.Logger
}

func NewChartHandler(store repository.ReportStore, log *logrus.Logger) *ChartHandler {
	return &ChartHandler{store: store, log: log}
}

type chartRequest struct {
	Principal           float64 `json:"principal"`
	AnnualRate          float64 `json:"annual_rate"`
	Years               int     `json:"years"`
	FixedCosts          float64 `json:"fixed_costs"`
	VariableCostPerUnit float64 `json:"variable_cost_per_unit"`
	PricePerUnit        float64 `json:"price_per_unit"`
	MaxUnits            int     `json:"max_units,omitempty"`
}

func (h *ChartHandler) BuildChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind := mux.Vars(r)["kind"]

	var config *domain.ChartConfig
	switch kind {
	case "loan-amortization":
		if req.Principal <= 0 || req.AnnualRate < 0 || req.Years <= 0 || req.Years > service.MaxYears {
			writeError(w, http.StatusBadRequest, "invalid loan parameters")
			return
		}
		config = chart.LoanAmortization(req.Principal, req.AnnualRate, req.Years)

	case "investment-growth":
		if req.Principal <= 0 || req.AnnualRate < 0 || req.Years <= 0 || req.Years > service.MaxYears {
			writeError(w, http.StatusBadRequest, "invalid investment parameters")
			return
		}
		config = chart.InvestmentGrowth(req.Principal, req.AnnualRate, req.Years)

	case "break-even":
		if req.FixedCosts < 0 || req.VariableCostPerUnit < 0 || req.PricePerUnit < 0 {
			writeError(w, http.StatusBadRequest, "invalid cost parameters")
			return
		}
		maxUnits := req.MaxUnits
		if maxUnits == 0 {
			maxUnits = service.DefaultChartMaxUnits
		}
		if maxUnits < 0 || maxUnits > service.MaxChartUnits {
			writeError(w, http.StatusBadRequest, "invalid unit range")
			return
		}
		var err error
		config, err = chart.BreakEvenAnalysis(req.FixedCosts, req.VariableCostPerUnit, req.PricePerUnit, maxUnits)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}

	default:
		writeError(w, http.StatusNotFound, "unknown chart kind")
		return
	}

	if r.URL.Query().Get("save") == "1" {
		path, err := h.store.Save(kind, config)
		if err != nil {
			h.log.WithError(err).WithField("kind", kind).Error("failed to save chart report")
			writeError(w, http.StatusInternalServerError, "failed to save report")
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Chart   *domain.ChartConfig `json:"chart"`
			SavedTo string              `json:"saved_to"`
		}{config, path})
		return
	}

	writeJSON(w, http.StatusOK, config)
}

package handlers

import (
	"net/http"

	"relocation-estimate-service/internal/api/dto"
	"relocation-estimate-service/internal/domain"
	"relocation-estimate-service/internal/services"
)

// RiskHandler exposes customer risk scoring over HTTP.
type RiskHandler struct{}

func (h *RiskHandler) Assess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RiskAssessmentRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.CompletedOrders < 0 || req.CanceledOrders < 0 || req.LatePayments < 0 ||
		req.TotalSpent < 0 || req.AccountAgeDays < 0 {
		writeError(w, r, http.StatusBadRequest, "history counts must be non-negative")
		return
	}

	assessment := services.AssessRisk(domain.CustomerHistory{
		CompletedOrders: req.CompletedOrders,
		CanceledOrders:  req.CanceledOrders,
		LatePayments:    req.LatePayments,
		TotalSpent:      req.TotalSpent,
		AccountAgeDays:  req.AccountAgeDays,
	})

	writeJSON(w, r, http.StatusOK, dto.RiskAssessmentResponse{
		RiskScore:          assessment.RiskScore,
		RiskLevel:          string(assessment.RiskLevel),
		Factors:            assessment.Factors,
		RecommendedActions: assessment.RecommendedActions,
	})
}

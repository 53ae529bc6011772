package services

import (
	"math"

	"relocation-estimate-service/internal/domain"
)

// Risk scoring thresholds.
const (
	cancelRateThresholdPct = 20
	newCustomerAgeDays     = 30
	highValueSpendFloor    = 500000
)

var riskActions = map[domain.RiskLevel][]string{
	domain.RiskLow: {
		"proceed with standard handling",
	},
	domain.RiskMedium: {
		"consider requesting prepayment",
		"provide a detailed written quote",
	},
	domain.RiskHigh: {
		"require prepayment",
		"require a detailed contract",
		"require manager approval",
	},
}

// AssessRisk converts a customer's order history into a risk score, level,
// contributing factors, and recommended actions.
//
// Factor order is fixed: cancellation rate, late payments, account age,
// then the high-value offset. The offset runs last and clamps at zero so
// the score is never negative.
func AssessRisk(history domain.CustomerHistory) domain.RiskAssessment {
	score := 0
	factors := []string{}

	if total := history.CompletedOrders + history.CanceledOrders; total > 0 {
		cancelRate := int(math.Round(100 * float64(history.CanceledOrders) / float64(total)))
		if cancelRate > cancelRateThresholdPct {
			score += 2
			factors = append(factors, "high cancellation rate")
		}
	}

	if history.LatePayments > 0 {
		if history.LatePayments > 3 {
			score += 3
		} else {
			score++
		}
		factors = append(factors, "history of late payments")
	}

	if history.AccountAgeDays < newCustomerAgeDays {
		score++
		factors = append(factors, "new customer")
	}

	if history.TotalSpent > highValueSpendFloor {
		score -= 2
		if score < 0 {
			score = 0
		}
		factors = append(factors, "high-value customer")
	}

	level := domain.RiskHigh
	switch {
	case score <= 1:
		level = domain.RiskLow
	case score <= 3:
		level = domain.RiskMedium
	}

	actions := make([]string, len(riskActions[level]))
	copy(actions, riskActions[level])

	return domain.RiskAssessment{
		RiskScore:          score,
		RiskLevel:          level,
		Factors:            factors,
		RecommendedActions: actions,
	}
}

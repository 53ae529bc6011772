package dto

type RiskAssessmentRequest struct {
	CompletedOrders int   `json:"completed_orders"`
	CanceledOrders  int   `json:"canceled_orders"`
	LatePayments    int   `json:"late_payments"`
	TotalSpent      int64 `json:"total_spent"`
	AccountAgeDays  int   `json:"account_age_days"`
}

type RiskAssessmentResponse struct {
	RiskScore          int      `json:"risk_score"`
	RiskLevel          string   `json:"risk_level"`
	Factors            []string `json:"factors"`
	RecommendedActions []string `json:"recommended_actions"`
}

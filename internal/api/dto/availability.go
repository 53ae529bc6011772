package dto

type DateCheckRequest struct {
	Date string `json:"date"`
}

type DateCheckResponse struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

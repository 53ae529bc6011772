package handlers

import (
	"errors"
	"net/http"

	"relocation-estimate-service/internal/api/dto"
	"relocation-estimate-service/internal/domain"
)

// CustomerHandler normalizes back-office contact records.
type CustomerHandler struct{}

func (h *CustomerHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CustomerRecordRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	normalized, err := domain.NormalizeCustomerRecord(domain.CustomerRecord{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		Email:      req.Email,
		Phone:      req.Phone,
		PostalCode: req.PostalCode,
		Address:    req.Address,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, r, http.StatusBadRequest, map[string]string{
				"error": verr.Wrapped.Error(),
				"field": verr.Field,
			})
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CustomerRecordResponse{
		LastName:   normalized.LastName,
		FirstName:  normalized.FirstName,
		Email:      normalized.Email,
		Phone:      normalized.Phone,
		PostalCode: normalized.PostalCode,
		Address:    normalized.Address,
	})
}

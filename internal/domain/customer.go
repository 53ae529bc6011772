package domain

import (
	"regexp"
	"strings"
)

// CustomerRecord is contact data as entered in the back office.
// Normalization is all-or-nothing: the record is either returned fully
// normalized or rejected with a ValidationError.
type CustomerRecord struct {
	LastName   string
	FirstName  string
	Email      string
	Phone      string
	PostalCode string
	Address    string
}

// CustomerHistory summarizes a customer's past order behavior.
// TotalSpent is an integer in the smallest currency unit.
type CustomerHistory struct {
	CompletedOrders int
	CanceledOrders  int
	LatePayments    int
	TotalSpent      int64
	AccountAgeDays  int
}

// RiskLevel bands a risk score for back-office handling rules.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment is the derived risk profile for one customer.
// Factors preserve evaluation order.
type RiskAssessment struct {
	RiskScore          int
	RiskLevel          RiskLevel
	Factors            []string
	RecommendedActions []string
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneStrip = regexp.MustCompile(`[\s\-()]`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	// Postal codes with an optional single hyphen group, e.g. 85009 or 123-4567.
	postalRegex = regexp.MustCompile(`^[0-9]{3,5}(-[0-9]{3,4})?$`)
)

// NormalizeCustomerRecord validates and normalizes a record as a unit.
// Whitespace is trimmed, the email is lowercased, and phone separators
// are stripped. The first failing field aborts normalization.
func NormalizeCustomerRecord(rec CustomerRecord) (CustomerRecord, error) {
	out := CustomerRecord{
		LastName:   strings.TrimSpace(rec.LastName),
		FirstName:  strings.TrimSpace(rec.FirstName),
		Email:      strings.ToLower(strings.TrimSpace(rec.Email)),
		Phone:      phoneStrip.ReplaceAllString(strings.TrimSpace(rec.Phone), ""),
		PostalCode: strings.TrimSpace(rec.PostalCode),
		Address:    strings.TrimSpace(rec.Address),
	}

	if out.LastName == "" {
		return CustomerRecord{}, NewValidationError("last_name", rec.LastName, ErrMissingName)
	}
	if out.FirstName == "" {
		return CustomerRecord{}, NewValidationError("first_name", rec.FirstName, ErrMissingName)
	}
	if !emailRegex.MatchString(out.Email) {
		return CustomerRecord{}, NewValidationError("email", rec.Email, ErrInvalidEmail)
	}
	if !phoneRegex.MatchString(out.Phone) {
		return CustomerRecord{}, NewValidationError("phone", rec.Phone, ErrInvalidPhone)
	}
	if !postalRegex.MatchString(out.PostalCode) {
		return CustomerRecord{}, NewValidationError("postal_code", rec.PostalCode, ErrInvalidPostalCode)
	}

	return out, nil
}

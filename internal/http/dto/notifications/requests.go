package notifications

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dropDatabas3/courrier/internal/email"
)

// emailRx: validación pragmática de formato, no RFC 5322 completo.
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Formatos de fecha aceptados para campos opcionales.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// WelcomeEmailRequest is the request for POST /notifications/welcome-email.
type WelcomeEmailRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Provider  string `json:"provider"`
	UserID    string `json:"userId,omitempty"`
}

// Validate checks required fields and enums.
func (r *WelcomeEmailRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("lastName is required")
	}
	switch r.Provider {
	case email.ProviderGoogle, email.ProviderFacebook, email.ProviderApple, email.ProviderGitHub:
	default:
		return fmt.Errorf("provider must be one of: google, facebook, apple, github")
	}
	return nil
}

// ToData convierte el DTO al tipo de dominio.
func (r *WelcomeEmailRequest) ToData() email.WelcomeData {
	return email.WelcomeData{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Provider:  r.Provider,
	}
}

// SubscriptionConfirmationRequest is the request for
// POST /notifications/subscription-confirmation.
type SubscriptionConfirmationRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Plan            string `json:"plan"`
	Status          string `json:"status"`
	TrialEnd        string `json:"trialEnd,omitempty"`
	NextBillingDate string `json:"nextBillingDate,omitempty"`
	Amount          *int64 `json:"amount,omitempty"` // unidades menores (centavos)
	Currency        string `json:"currency,omitempty"`
	UserID          string `json:"userId,omitempty"`
}

// Validate checks required fields, enums and optional date formats.
func (r *SubscriptionConfirmationRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("lastName is required")
	}
	switch r.Plan {
	case email.PlanMonthly, email.PlanYearly:
	default:
		return fmt.Errorf("plan must be one of: monthly, yearly")
	}
	switch r.Status {
	case email.StatusTrial, email.StatusActive:
	default:
		return fmt.Errorf("status must be one of: trial, active")
	}
	if r.TrialEnd != "" {
		if _, err := parseDate(r.TrialEnd); err != nil {
			return fmt.Errorf("trialEnd: %v", err)
		}
	}
	if r.NextBillingDate != "" {
		if _, err := parseDate(r.NextBillingDate); err != nil {
			return fmt.Errorf("nextBillingDate: %v", err)
		}
	}
	if r.Amount != nil && *r.Amount < 0 {
		return fmt.Errorf("amount must be >= 0")
	}
	return nil
}

// ToData convierte el DTO al tipo de dominio.
// Asume Validate() ya ejecutado: fechas inválidas quedan como ausentes.
func (r *SubscriptionConfirmationRequest) ToData() email.SubscriptionData {
	data := email.SubscriptionData{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Plan:      r.Plan,
		Status:    r.Status,
		Amount:    r.Amount,
		Currency:  r.Currency,
	}
	if t, err := parseDate(r.TrialEnd); err == nil && r.TrialEnd != "" {
		data.TrialEnd = &t
	}
	if t, err := parseDate(r.NextBillingDate); err == nil && r.NextBillingDate != "" {
		data.NextBillingDate = &t
	}
	return data
}

func validateEmail(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRx.MatchString(v) {
		return fmt.Errorf("email has invalid format")
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date (expected RFC3339 or YYYY-MM-DD)")
}

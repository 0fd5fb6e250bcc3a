package notifications

import (
	"testing"
	"time"
)

func validWelcome() WelcomeEmailRequest {
	return WelcomeEmailRequest{
		Email:     "marie@example.com",
		FirstName: "Marie",
		LastName:  "Dupont",
		Provider:  "google",
	}
}

func TestWelcomeEmailRequestValidate(t *testing.T) {
	valid := validWelcome()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(r *WelcomeEmailRequest)
	}{
		{"empty email", func(r *WelcomeEmailRequest) { r.Email = "" }},
		{"malformed email", func(r *WelcomeEmailRequest) { r.Email = "not-an-email" }},
		{"email without tld", func(r *WelcomeEmailRequest) { r.Email = "a@b" }},
		{"missing first name", func(r *WelcomeEmailRequest) { r.FirstName = "  " }},
		{"missing last name", func(r *WelcomeEmailRequest) { r.LastName = "" }},
		{"unknown provider", func(r *WelcomeEmailRequest) { r.Provider = "okta" }},
		{"empty provider", func(r *WelcomeEmailRequest) { r.Provider = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validWelcome()
			tc.mutate(&req)
			if err := req.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func validSubscription() SubscriptionConfirmationRequest {
	return SubscriptionConfirmationRequest{
		Email:     "marie@example.com",
		FirstName: "Marie",
		LastName:  "Dupont",
		Plan:      "monthly",
		Status:    "trial",
	}
}

func TestSubscriptionConfirmationRequestValidate(t *testing.T) {
	valid := validSubscription()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(r *SubscriptionConfirmationRequest)
		wantOK bool
	}{
		{"unknown plan", func(r *SubscriptionConfirmationRequest) { r.Plan = "lifetime" }, false},
		{"unknown status", func(r *SubscriptionConfirmationRequest) { r.Status = "cancelled" }, false},
		{"bad trial end", func(r *SubscriptionConfirmationRequest) { r.TrialEnd = "12/09/2026" }, false},
		{"rfc3339 trial end", func(r *SubscriptionConfirmationRequest) { r.TrialEnd = "2026-09-12T00:00:00Z" }, true},
		{"date-only billing", func(r *SubscriptionConfirmationRequest) { r.NextBillingDate = "2026-10-01" }, true},
		{"negative amount", func(r *SubscriptionConfirmationRequest) { a := int64(-1); r.Amount = &a }, false},
		{"zero amount", func(r *SubscriptionConfirmationRequest) { a := int64(0); r.Amount = &a }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubscription()
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSubscriptionConfirmationToData(t *testing.T) {
	req := validSubscription()
	req.TrialEnd = "2026-09-12"
	req.Currency = "usd"
	amount := int64(999)
	req.Amount = &amount

	data := req.ToData()
	if data.TrialEnd == nil {
		t.Fatal("TrialEnd not parsed")
	}
	want := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	if !data.TrialEnd.Equal(want) {
		t.Fatalf("TrialEnd = %v, want %v", data.TrialEnd, want)
	}
	if data.NextBillingDate != nil {
		t.Fatal("absent NextBillingDate must stay nil")
	}
	if data.Amount == nil || *data.Amount != 999 {
		t.Fatalf("Amount = %v", data.Amount)
	}
	if data.Currency != "usd" {
		t.Fatalf("Currency = %q, passed through raw", data.Currency)
	}
}

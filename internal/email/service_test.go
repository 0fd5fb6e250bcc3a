package email

import (
	"context"
	"errors"
	"testing"
)

// fakeSender registra llamadas y devuelve los errores configurados.
type fakeSender struct {
	sendCalls   int
	verifyCalls int
	sendErr     error
	verifyErr   error

	lastTo      string
	lastSubject string
}

func (f *fakeSender) Send(to, subject, htmlBody, textBody string) error {
	f.sendCalls++
	f.lastTo = to
	f.lastSubject = subject
	return f.sendErr
}

func (f *fakeSender) Verify() error {
	f.verifyCalls++
	return f.verifyErr
}

func welcomeFixture() WelcomeData {
	return WelcomeData{
		Email:     "marie@example.com",
		FirstName: "Marie",
		LastName:  "Dupont",
		Provider:  ProviderGoogle,
	}
}

func TestServiceSendWelcomeEmail(t *testing.T) {
	r := newTestRenderer(t)
	fake := &fakeSender{}
	svc := NewService(ServiceConfig{Renderer: r, Sender: fake})

	if ok := svc.SendWelcomeEmail(context.Background(), welcomeFixture()); !ok {
		t.Fatal("expected true on successful send")
	}
	if fake.sendCalls != 1 {
		t.Fatalf("sendCalls = %d, want 1", fake.sendCalls)
	}
	if fake.lastTo != "marie@example.com" {
		t.Fatalf("lastTo = %q", fake.lastTo)
	}
	if fake.lastSubject == "" {
		t.Fatal("expected non-empty subject")
	}
}

func TestServiceTransportFailureReturnsFalse(t *testing.T) {
	r := newTestRenderer(t)
	fake := &fakeSender{sendErr: errors.New("dial tcp: connection refused")}
	svc := NewService(ServiceConfig{Renderer: r, Sender: fake})

	if ok := svc.SendWelcomeEmail(context.Background(), welcomeFixture()); ok {
		t.Fatal("expected false when the transport fails")
	}
	if fake.sendCalls != 1 {
		t.Fatalf("sendCalls = %d, want 1", fake.sendCalls)
	}
}

func TestServiceRenderFailureReturnsFalse(t *testing.T) {
	// Store vacío: el render falla antes de llegar al transporte.
	r := NewRenderer(NewStore(t.TempDir()), "https://app.example.com")
	fake := &fakeSender{}
	svc := NewService(ServiceConfig{Renderer: r, Sender: fake})

	if ok := svc.SendWelcomeEmail(context.Background(), welcomeFixture()); ok {
		t.Fatal("expected false when rendering fails")
	}
	if fake.sendCalls != 0 {
		t.Fatalf("transport should not be touched, sendCalls = %d", fake.sendCalls)
	}
}

func TestServiceTestModeSkipsTransport(t *testing.T) {
	r := newTestRenderer(t)
	fake := &fakeSender{sendErr: errors.New("should never be called")}
	svc := NewService(ServiceConfig{Renderer: r, Sender: fake, TestMode: true})

	if ok := svc.SendWelcomeEmail(context.Background(), welcomeFixture()); !ok {
		t.Fatal("test mode must report success")
	}
	if fake.sendCalls != 0 {
		t.Fatalf("test mode must not touch the transport, sendCalls = %d", fake.sendCalls)
	}
}

func TestServiceSendSubscriptionConfirmation(t *testing.T) {
	r := newTestRenderer(t)
	fake := &fakeSender{}
	svc := NewService(ServiceConfig{Renderer: r, Sender: fake})

	ok := svc.SendSubscriptionConfirmationEmail(context.Background(), SubscriptionData{
		Email:     "marie@example.com",
		FirstName: "Marie",
		LastName:  "Dupont",
		Plan:      PlanMonthly,
		Status:    StatusTrial,
	})
	if !ok {
		t.Fatal("expected true on successful send")
	}
	if fake.lastSubject != "Votre période d'essai a commencé" {
		t.Fatalf("subject = %q", fake.lastSubject)
	}
}

func TestServiceVerifyConnection(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("reachable", func(t *testing.T) {
		fake := &fakeSender{}
		svc := NewService(ServiceConfig{Renderer: r, Sender: fake})
		if !svc.VerifyConnection(context.Background()) {
			t.Fatal("expected true when the probe succeeds")
		}
		if fake.verifyCalls != 1 {
			t.Fatalf("verifyCalls = %d, want 1", fake.verifyCalls)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		fake := &fakeSender{verifyErr: errors.New("dial tcp: i/o timeout")}
		svc := NewService(ServiceConfig{Renderer: r, Sender: fake})
		if svc.VerifyConnection(context.Background()) {
			t.Fatal("expected false when the probe fails")
		}
	})

	t.Run("test mode", func(t *testing.T) {
		fake := &fakeSender{verifyErr: errors.New("should never be called")}
		svc := NewService(ServiceConfig{Renderer: r, Sender: fake, TestMode: true})
		if !svc.VerifyConnection(context.Background()) {
			t.Fatal("test mode reports the transport as reachable")
		}
		if fake.verifyCalls != 0 {
			t.Fatalf("test mode must not probe, verifyCalls = %d", fake.verifyCalls)
		}
	})
}

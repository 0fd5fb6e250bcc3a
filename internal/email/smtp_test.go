package email

import (
	"errors"
	"net"
	"testing"
)

// closedPort reserva un puerto y lo libera: nadie escucha ahí.
func closedPort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return port
}

func TestSMTPSenderSendWrapsErrSendFailed(t *testing.T) {
	s := &SMTPSender{
		Host: "127.0.0.1",
		Port: closedPort(t),
		From: "no-reply@example.com",
	}

	err := s.Send("marie@example.com", "sujet", "<p>html</p>", "texto")
	if err == nil {
		t.Fatal("expected error against a closed port")
	}
	if !errors.Is(err, ErrSendFailed) {
		t.Fatalf("expected ErrSendFailed, got %v", err)
	}
}

func TestSMTPSenderVerifyUnreachable(t *testing.T) {
	s := &SMTPSender{Host: "127.0.0.1", Port: closedPort(t)}

	if err := s.Verify(); err == nil {
		t.Fatal("expected error against a closed port")
	}
}

package email

// Sender es la interfaz de transporte para enviar emails.
// Implementada por SMTPSender.
type Sender interface {
	// Send envía un email con contenido HTML y texto plano.
	// El destinatario recibe ambas versiones como multipart/alternative.
	Send(to, subject, htmlBody, textBody string) error

	// Verify hace un probe de conectividad contra el transporte
	// (dial + handshake + auth) sin enviar nada.
	Verify() error
}

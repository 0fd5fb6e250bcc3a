package email

import (
	"context"
	"time"

	"github.com/dropDatabas3/courrier/internal/metrics"
	"github.com/dropDatabas3/courrier/internal/observability/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service define las operaciones del dispatcher de emails transaccionales.
//
// Contrato: las operaciones de envío NUNCA propagan errores. Todo fallo
// (render o transporte) se captura acá, se loguea y se convierte en false.
// El caller solo inspecciona el booleano.
type Service interface {
	// SendWelcomeEmail envía el email de bienvenida.
	SendWelcomeEmail(ctx context.Context, data WelcomeData) bool

	// SendSubscriptionConfirmationEmail envía la confirmación de suscripción.
	SendSubscriptionConfirmationEmail(ctx context.Context, data SubscriptionData) bool

	// VerifyConnection hace un probe de conectividad contra el transporte.
	// true = alcanzable. En modo test siempre true.
	VerifyConnection(ctx context.Context) bool
}

// ServiceConfig contiene la configuración del dispatcher.
type ServiceConfig struct {
	Renderer *Renderer
	Sender   Sender // ignorado cuando TestMode es true

	// TestMode: sin credenciales SMTP el servicio loguea el contenido del
	// email y reporta éxito, sin tocar la red. Permite correr el servicio
	// en entornos sin SMTP ejercitando todo el call path.
	TestMode bool
}

type service struct {
	renderer *Renderer
	sender   Sender
	testMode bool
}

// NewService crea una nueva instancia del dispatcher.
func NewService(cfg ServiceConfig) Service {
	if cfg.TestMode {
		logger.L().Warn("no SMTP credentials configured, running in test mode (emails will be logged, not sent)",
			logger.Component("EmailService"),
		)
	}
	return &service{
		renderer: cfg.Renderer,
		sender:   cfg.Sender,
		testMode: cfg.TestMode,
	}
}

func (s *service) SendWelcomeEmail(ctx context.Context, data WelcomeData) bool {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("SendWelcomeEmail"),
		logger.Email(data.Email),
	)

	rendered, err := s.renderer.RenderWelcome(data)
	if err != nil {
		log.Error("failed to render welcome email", logger.Err(err))
		metrics.EmailSendsTotal.WithLabelValues(TemplateWelcome, s.mode(), "error").Inc()
		return false
	}

	return s.dispatch(log, TemplateWelcome, data.Email, rendered)
}

func (s *service) SendSubscriptionConfirmationEmail(ctx context.Context, data SubscriptionData) bool {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("SendSubscriptionConfirmationEmail"),
		logger.Email(data.Email),
		logger.String("plan", data.Plan),
		logger.String("status", data.Status),
	)

	rendered, err := s.renderer.RenderSubscription(data)
	if err != nil {
		log.Error("failed to render subscription email", logger.Err(err))
		metrics.EmailSendsTotal.WithLabelValues(TemplateSubscription, s.mode(), "error").Inc()
		return false
	}

	return s.dispatch(log, TemplateSubscription, data.Email, rendered)
}

func (s *service) VerifyConnection(ctx context.Context) bool {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("VerifyConnection"))

	if s.testMode {
		log.Debug("test mode, skipping SMTP probe")
		return true
	}

	if err := s.sender.Verify(); err != nil {
		diag := DiagnoseSMTP(err)
		log.Warn("smtp connection probe failed",
			logger.Err(err),
			logger.String("diag_code", diag.Code),
		)
		return false
	}
	return true
}

// dispatch entrega el email renderizado por el transporte o, en modo test,
// loguea el contenido y reporta éxito.
func (s *service) dispatch(log *zap.Logger, template, to string, rendered *Rendered) bool {
	msgID := uuid.NewString()
	log = log.With(logger.Template(template), logger.MessageID(msgID))

	start := time.Now()
	defer func() {
		metrics.EmailSendDuration.WithLabelValues(template).Observe(time.Since(start).Seconds())
	}()

	if s.testMode {
		log.Info("test mode: email logged instead of sent",
			logger.Subject(rendered.Subject),
			logger.String("text_body", rendered.Text),
		)
		metrics.EmailSendsTotal.WithLabelValues(template, "test", "ok").Inc()
		return true
	}

	if err := s.sender.Send(to, rendered.Subject, rendered.HTML, rendered.Text); err != nil {
		diag := DiagnoseSMTP(err)
		log.Error("failed to send email",
			logger.Err(err),
			logger.String("diag_code", diag.Code),
			logger.Bool("temporary", diag.Temporary),
		)
		metrics.EmailSendsTotal.WithLabelValues(template, "smtp", "error").Inc()
		return false
	}

	log.Info("email sent", logger.Subject(rendered.Subject))
	metrics.EmailSendsTotal.WithLabelValues(template, "smtp", "ok").Inc()
	return true
}

func (s *service) mode() string {
	if s.testMode {
		return "test"
	}
	return "smtp"
}

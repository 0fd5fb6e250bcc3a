// Package notifications contiene el service que adapta los DTOs HTTP al
// dispatcher de emails.
package notifications

import (
	"context"
	"time"

	"github.com/dropDatabas3/courrier/internal/email"
	dto "github.com/dropDatabas3/courrier/internal/http/dto/notifications"
	"github.com/dropDatabas3/courrier/internal/observability/logger"
)

// Mensajes del producto, en francés.
const (
	msgWelcomeSent        = "Email de bienvenue envoyé avec succès"
	msgWelcomeFailed      = "Échec de l'envoi de l'email de bienvenue"
	msgSubscriptionSent   = "Email de confirmation d'abonnement envoyé avec succès"
	msgSubscriptionFailed = "Échec de l'envoi de l'email de confirmation d'abonnement"
)

// Service define las operaciones expuestas por los endpoints de notificaciones.
type Service interface {
	SendWelcome(ctx context.Context, req dto.WelcomeEmailRequest) dto.NotificationResponse
	SendSubscriptionConfirmation(ctx context.Context, req dto.SubscriptionConfirmationRequest) dto.NotificationResponse
	Health(ctx context.Context) dto.HealthResponse
}

type service struct {
	dispatcher email.Service
}

// NewService crea un nuevo service de notificaciones.
func NewService(dispatcher email.Service) Service {
	return &service{dispatcher: dispatcher}
}

func (s *service) SendWelcome(ctx context.Context, req dto.WelcomeEmailRequest) dto.NotificationResponse {
	ok := s.dispatcher.SendWelcomeEmail(ctx, req.ToData())

	msg := msgWelcomeSent
	if !ok {
		msg = msgWelcomeFailed
	}
	return dto.NotificationResponse{
		Success:   ok,
		Message:   msg,
		Timestamp: time.Now().UTC(),
	}
}

func (s *service) SendSubscriptionConfirmation(ctx context.Context, req dto.SubscriptionConfirmationRequest) dto.NotificationResponse {
	ok := s.dispatcher.SendSubscriptionConfirmationEmail(ctx, req.ToData())

	msg := msgSubscriptionSent
	if !ok {
		msg = msgSubscriptionFailed
	}
	return dto.NotificationResponse{
		Success:   ok,
		Message:   msg,
		Timestamp: time.Now().UTC(),
	}
}

func (s *service) Health(ctx context.Context) dto.HealthResponse {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("Health"))

	connected := s.dispatcher.VerifyConnection(ctx)

	resp := dto.HealthResponse{
		Status:       "healthy",
		EmailService: "connected",
		Timestamp:    time.Now().UTC(),
	}
	if !connected {
		resp.Status = "degraded"
		resp.EmailService = "disconnected"
		log.Warn("email transport unreachable")
	}
	return resp
}

// Package notifications expone los handlers HTTP de envío de emails.
package notifications

import (
	"net/http"

	dto "github.com/dropDatabas3/courrier/internal/http/dto/notifications"
	httpErrors "github.com/dropDatabas3/courrier/internal/http/errors"
	"github.com/dropDatabas3/courrier/internal/http/helpers"
	svc "github.com/dropDatabas3/courrier/internal/http/services/notifications"
	"github.com/dropDatabas3/courrier/internal/observability/logger"
)

// Controller maneja los endpoints de /notifications.
type Controller struct {
	Service svc.Service
}

func NewController(service svc.Service) *Controller {
	return &Controller{Service: service}
}

// WelcomeEmail maneja POST /notifications/welcome-email.
// Siempre responde 200 con el flag success; los fallos de transporte
// no se traducen a errores HTTP.
func (c *Controller) WelcomeEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("WelcomeEmail"))

	var req dto.WelcomeEmailRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		log.Warn("invalid request", logger.Err(err))
		httpErrors.WriteError(w, httpErrors.ErrValidation.WithDetail(err.Error()))
		return
	}

	resp := c.Service.SendWelcome(ctx, req)
	helpers.WriteJSON(w, http.StatusOK, resp)
}

// SubscriptionConfirmation maneja POST /notifications/subscription-confirmation.
func (c *Controller) SubscriptionConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("SubscriptionConfirmation"))

	var req dto.SubscriptionConfirmationRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		log.Warn("invalid request", logger.Err(err))
		httpErrors.WriteError(w, httpErrors.ErrValidation.WithDetail(err.Error()))
		return
	}

	resp := c.Service.SendSubscriptionConfirmation(ctx, req)
	helpers.WriteJSON(w, http.StatusOK, resp)
}

// Health maneja GET /notifications/health. Responde 200 aunque el
// transporte esté caído; el estado va en el body.
func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	resp := c.Service.Health(r.Context())
	helpers.WriteJSON(w, http.StatusOK, resp)
}

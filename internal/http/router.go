// Package http arma el router del servicio: middlewares globales,
// endpoints de notificaciones protegidos por API key y superficie
// operacional (/readyz, /metrics).
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/courrier/internal/config"
	notifCtrl "github.com/dropDatabas3/courrier/internal/http/controllers/notifications"
	httpErrors "github.com/dropDatabas3/courrier/internal/http/errors"
	"github.com/dropDatabas3/courrier/internal/http/helpers"
	"github.com/dropDatabas3/courrier/internal/http/middlewares"
)

// RouterDeps agrupa las dependencias necesarias para construir el router.
type RouterDeps struct {
	Config         *config.Config
	Notifications  *notifCtrl.Controller
	MetricsHandler http.Handler
}

// NewRouter construye el http.Handler raíz del servicio.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpErrors.WriteError(w, httpErrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpErrors.WriteError(w, httpErrors.ErrMethodNotAllowed)
	})

	// Superficie operacional, sin auth.
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	guard := middlewares.RequireAPIKey(deps.Config.Auth.APIKey)

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/welcome-email", wrap(deps.Notifications.WelcomeEmail, guard))
		r.Post("/subscription-confirmation", wrap(deps.Notifications.SubscriptionConfirmation, guard))
		r.Get("/health", wrap(deps.Notifications.Health, guard, middlewares.WithNoStore()))
	})

	// Middlewares globales, del más externo al más interno.
	return middlewares.Chain(r,
		middlewares.WithRecover(),
		middlewares.WithRequestID(),
		middlewares.WithLogging(),
		WithMetrics,
		middlewares.WithSecurityHeaders(),
		middlewares.WithCORS(deps.Config.Server.CORSAllowedOrigins),
	)
}

// wrap aplica middlewares por ruta sobre un HandlerFunc.
func wrap(h http.HandlerFunc, mws ...middlewares.Middleware) http.HandlerFunc {
	return middlewares.Chain(h, mws...).ServeHTTP
}

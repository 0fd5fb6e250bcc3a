package middlewares

import (
	"net/http"

	httperrors "github.com/dropDatabas3/courrier/internal/http/errors"
	"github.com/dropDatabas3/courrier/internal/observability/logger"
)

// WithRecover captura panics del pipeline y responde 500.
// Un panic renderizando un template no debe tirar el servicio.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.From(r.Context()).Error("panic recovered",
						logger.Op("recover"),
						logger.Any("panic", rec),
					)

					httperrors.WriteError(w, httperrors.ErrInternalServerError.WithDetail("panic recovered"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

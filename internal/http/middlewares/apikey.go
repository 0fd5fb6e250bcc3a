package middlewares

import (
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/courrier/internal/http/errors"
	"github.com/dropDatabas3/courrier/internal/observability/logger"
)

// credentialExtractor intenta extraer una credencial candidata del request.
// Retorna false si el header está ausente o malformado.
type credentialExtractor func(r *http.Request) (string, bool)

// bearerToken extrae el token de "Authorization: Bearer <token>".
// Un header malformado (scheme distinto, token vacío) cuenta como ausente:
// el guard sigue con el próximo extractor.
func bearerToken(r *http.Request) (string, bool) {
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(ah[len("Bearer "):])
	if tok == "" {
		return "", false
	}
	return tok, true
}

// apiKeyHeader extrae la credencial de "X-Api-Key".
// Solo cuenta si el header tiene exactamente un valor: múltiples valores se
// tratan como ausente. A diferencia del Authorization header, acá no hay
// fallthrough posterior: es el último extractor de la cadena.
func apiKeyHeader(r *http.Request) (string, bool) {
	vals := r.Header.Values("X-Api-Key")
	if len(vals) != 1 {
		return "", false
	}
	v := strings.TrimSpace(vals[0])
	if v == "" {
		return "", false
	}
	return v, true
}

// RequireAPIKey protege un handler con una API key compartida.
//
// Orden de extracción: (1) Authorization Bearer, (2) X-Api-Key. El primer
// candidato encontrado es el que se compara: si ambos headers vienen y el
// Authorization está bien formado, gana el Authorization aunque X-Api-Key
// difiera. La comparación es byte a byte, case-sensitive.
//
// Si secret está vacío, el guard rechaza TODOS los requests (fail-closed)
// y lo advierte al construirse.
func RequireAPIKey(secret string) Middleware {
	if secret == "" {
		logger.L().Warn("API key not configured, every request will be rejected",
			logger.Component("ApiKeyGuard"),
		)
	}

	extractors := []credentialExtractor{bearerToken, apiKeyHeader}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.From(r.Context()).With(
				logger.Component("ApiKeyGuard"),
				logger.ClientIP(clientIP(r)),
			)

			var candidate string
			found := false
			for _, extract := range extractors {
				if c, ok := extract(r); ok {
					candidate = c
					found = true
					break
				}
			}

			if secret == "" || !found || candidate != secret {
				log.Warn("unauthorized request rejected")
				w.Header().Set("WWW-Authenticate", `Bearer realm="notifications"`)
				httperrors.WriteError(w, httperrors.ErrInvalidAPIKey)
				return
			}

			log.Debug("request authorized")
			next.ServeHTTP(w, r)
		})
	}
}

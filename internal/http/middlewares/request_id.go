package middlewares

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
)

const requestIDHeader = "X-Request-ID"

// maxRequestIDLen acota IDs enviados por el cliente: más largo que esto se
// descarta y se genera uno propio (evita basura en los logs).
const maxRequestIDLen = 64

// WithRequestID propaga o genera el ID de correlación de cada request.
// El ID acompaña cada línea de log del request y viaja de vuelta al cliente
// en el header de respuesta, lo que permite correlacionar un envío de email
// con su entrada en los logs del dispatcher.
func WithRequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if rid == "" || len(rid) > maxRequestIDLen {
				rid = newRequestID()
			}

			w.Header().Set(requestIDHeader, rid)

			ctx := setRequestID(r.Context(), rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// newRequestID genera 16 bytes aleatorios en hex.
func newRequestID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

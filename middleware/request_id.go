// Package middleware, HTTP middleware'lerini içerir.
//
// RequestID her isteğe bir kimlik atar ve access log yazar.
// İstemci kendi X-Request-ID header'ını gönderdiyse o korunur —
// reverse proxy arkasında uçtan uca iz sürmeyi mümkün kılar.
package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// headerRequestID, istek kimliğinin taşındığı header.
const headerRequestID = "X-Request-ID"

// statusRecorder, WriteHeader'a yazılan status code'u yakalar.
// http.ResponseWriter'ı sarar — access log'da status gösterebilmek için.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestID, istek kimliği + access log middleware'i.
// En dış katman olarak wire edilir (CORS dahil her şeyi sarar).
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(headerRequestID, rid)

		// WriteHeader hiç çağrılmazsa net/http 200 yazar — default'u yansıt.
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		log.Printf("[http] %s %s %d %s rid=%s",
			r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond), rid)
	})
}

package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-Id"

type ctxKey int

const loggerKey ctxKey = iota

// withRequestID reuses the caller's request id or mints one, echoes it in
// the response, and stores a request-scoped logger in the context.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)

		entry := s.log.WithFields(log.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		entry.Debug("request received")
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey, entry)))
	})
}

// loggerFrom returns the request-scoped logger, or the server logger when
// the request did not pass through withRequestID.
func (s *Server) loggerFrom(ctx context.Context) log.FieldLogger {
	if l, ok := ctx.Value(loggerKey).(log.FieldLogger); ok {
		return l
	}
	return s.log
}

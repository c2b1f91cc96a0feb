package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/textcircle/validate"
)

// reportJSON is the ?format=json body of POST /validate.
type reportJSON struct {
	Valid  bool          `json:"valid"`
	Kind   validate.Kind `json:"kind"`
	Radius int           `json:"radius"`
	Report string        `json:"report"`
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	}
}

func (s *Server) handleValidate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		entry := s.loggerFrom(r.Context())

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxInputBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				entry.WithField("limit", s.cfg.MaxInputBytes).Warn("input too large")
				http.Error(w, "input too large", http.StatusRequestEntityTooLarge)
				return
			}
			entry.WithError(err).Warn("reading body failed")
			http.Error(w, "cannot read body", http.StatusBadRequest)
			return
		}

		v := validate.New(validate.WithLogger(entry), validate.WithContext(r.Context()))
		report, err := v.Validate(string(body))
		if err != nil {
			// only a cancelled request context gets here
			entry.WithError(err).Warn("validation aborted")
			http.Error(w, "validation aborted", http.StatusServiceUnavailable)
			return
		}
		entry.WithFields(log.Fields{
			"kind":     report.Kind.String(),
			"duration": time.Since(start),
		}).Info("validated")

		if r.URL.Query().Get("format") == "json" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(reportJSON{
				Valid:  report.IsValid(),
				Kind:   report.Kind,
				Radius: report.Radius,
				Report: report.String(),
			})
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, report.String())
	}
}

func (s *Server) handleWebsocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry := s.loggerFrom(r.Context())

		con, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the error response
			entry.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer con.Close()
		con.SetReadLimit(s.cfg.MaxInputBytes)
		entry.Info("websocket connected")

		v := validate.New(validate.WithLogger(entry))
		for messages := 0; ; messages++ {
			kind, msg, err := con.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					entry.WithError(err).Warn("websocket read failed")
				}
				entry.WithField("messages", messages).Info("websocket closed")
				return
			}
			if kind != websocket.TextMessage {
				continue
			}

			report, _ := v.Validate(string(msg)) // no cancellable context here
			entry.WithField("kind", report.Kind.String()).Debug("websocket validated")

			_ = con.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout.Duration))
			if err := con.WriteMessage(websocket.TextMessage, []byte(report.String())); err != nil {
				entry.WithError(err).Warn("websocket write failed")
				return
			}
		}
	}
}

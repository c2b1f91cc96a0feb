// Package server exposes the validator over HTTP and websocket.
//
// Routes:
//
//	POST /validate   body is the grid text; reply is the report
//	                 (text/plain, or JSON with ?format=json)
//	GET  /ws         websocket; every text message is a grid, every reply a report
//	GET  /healthz    liveness probe
//
// A failing report is still a 200: the transport worked, the circle did not.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/textcircle/config"
)

const (
	URIValidate  = "/validate"
	URIWebsocket = "/ws"
	URIHealth    = "/healthz"
)

// shutdownTimeout bounds graceful shutdown once the serve context ends.
const shutdownTimeout = 5 * time.Second

// Server routes requests to the validator.
type Server struct {
	cfg      config.Server
	log      log.FieldLogger
	router   *way.Router
	upgrader *websocket.Upgrader
}

// New builds a Server with its routes registered.
func New(cfg config.Server, logger log.FieldLogger) *Server {
	s := &Server{
		cfg:      cfg,
		log:      logger,
		upgrader: &websocket.Upgrader{},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodPost, URIValidate, s.handleValidate())
	s.router.HandleFunc(http.MethodGet, URIWebsocket, s.handleWebsocket())
	s.router.HandleFunc(http.MethodGet, URIHealth, s.handleHealth())
}

// Handler returns the root handler, with request ids attached.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.router)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout.Duration,
		WriteTimeout: s.cfg.WriteTimeout.Duration,
	}

	errs := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr).Info("listening")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

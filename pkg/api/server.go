package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/cbodonnell/tetris/pkg/api/handlers"
	"github.com/cbodonnell/tetris/pkg/api/middleware"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/network"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

const shutdownTimeout = 5 * time.Second

// APIServer serves the read-only spectator feed.
type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Addr           string
	TLS            *TLSConfig
	StateManager   state.StateManager
	NetworkManager *network.NetworkManager
}

// NewAPIServer creates a new http.Server for spectators
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    opts.Addr,
		Handler: NewRouter(opts.StateManager, opts.NetworkManager),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter builds the spectator routes.
func NewRouter(stateManager state.StateManager, networkManager *network.NetworkManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.NewLoggingMiddleware())

	router.Handle("/healthz", handlers.HandleHealth()).Methods(http.MethodGet)
	router.Handle("/state", middleware.NewCORSMiddleware()(gzhttp.GzipHandler(handlers.HandleState(stateManager)))).
		Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/ws", handlers.HandleSpectate(networkManager, stateManager)).Methods(http.MethodGet)

	return router
}

// Handler returns the server's root handler.
func (s *APIServer) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until ctx is done and then shuts the server down.
// Spectator connections see ctx cancelled through their request context.
func (s *APIServer) Start(ctx context.Context) error {
	s.server.BaseContext = func(net.Listener) context.Context {
		return ctx
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Stop(shutdownCtx); err != nil {
			log.Error("Failed to shut down API server: %v", err)
		}
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return err
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

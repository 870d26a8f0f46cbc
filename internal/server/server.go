package server

import (
	"context"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/MKhiriev/go-json-localization/internal/config"
	"github.com/MKhiriev/go-json-localization/internal/handler"
	"github.com/MKhiriev/go-json-localization/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// listening is closed once the listener is bound.
	listening chan struct{}
	started   atomic.Bool
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		listening:  make(chan struct{}),
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Run binds the listener and serves until ctx is done or serving fails.
// A server runs at most once; later calls return errServerAlreadyStarted.
func (s *server) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errServerAlreadyStarted
	}

	if err := s.httpServer.Listen(); err != nil {
		return err
	}
	close(s.listening)

	s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

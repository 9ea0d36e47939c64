package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/creator-automation/internal/api/handler"
	"github.com/vfg2006/creator-automation/internal/api/handler/router"
	"github.com/vfg2006/creator-automation/internal/config"
	"github.com/vfg2006/creator-automation/internal/scheduler"
	"github.com/vfg2006/creator-automation/internal/usecases/authenticating"
	"github.com/vfg2006/creator-automation/internal/usecases/monitoring"
	"github.com/vfg2006/creator-automation/pkg/log"
	"github.com/vfg2006/creator-automation/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Server é a API de operação exposta junto do agendador
type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	statusReader monitoring.StatusReader,
	runner scheduler.Runner,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, authenticator, statusReader, runner),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// NewHandler monta rotas e middlewares. Separado de New para ser testado com httptest.
func NewHandler(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	statusReader monitoring.StatusReader,
	runner scheduler.Runner,
) http.Handler {
	rt := router.New(
		router.WithFallbacks(handler.NotFound(), handler.MethodNotAllowed()),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Status(statusReader)...),
		router.WithRoutes(handler.CronJobs(runner)...),
	)

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	).Then(rt)
}

// Run serve até ctx ser cancelado e então desliga com timeout
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.ForContext(ctx).WithField("address", s.httpServer.Addr).Info("api: server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("erro durante a execução do servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.ForContext(ctx).WithField("timeout", shutdownTimeout.String()).Info("api: shutting down")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro ao desligar o servidor: %w", err)
	}

	log.ForContext(ctx).Info("api: server stopped")
	return nil
}

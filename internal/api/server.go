// Package api expõe o servidor de status do relatório agendado
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-report/internal/api/handler"
	"github.com/vfg2006/sales-report/internal/api/handler/router"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	scheduler handler.ReportScheduler,
	authenticator authenticating.Authenticator,
) *Server {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Report(scheduler, authenticator, cfg.Output.Dir)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende requisições até o contexto ser cancelado e então desliga o servidor
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", listener.Addr().String()).Info("Servidor de status iniciando")

		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")
	return s.Shutdown(shutdownCtx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor de status desligado com sucesso")
	return nil
}

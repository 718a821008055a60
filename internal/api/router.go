package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ACBRI/veritas.ia/internal/api/handlers/http/live"
	"github.com/ACBRI/veritas.ia/internal/api/handlers/http/reports"
	"github.com/ACBRI/veritas.ia/internal/api/handlers/http/system"
	"github.com/ACBRI/veritas.ia/internal/config"
	"github.com/ACBRI/veritas.ia/internal/middleware"
	"github.com/ACBRI/veritas.ia/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, registry live.Registry) *Server {
	reportsHandler := reports.NewHandler(logger, svc.Reports, svc.Catalog)
	liveHandler := live.NewHandler(logger, registry)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(reportsHandler, liveHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(reportsHandler *reports.Handler, liveHandler *live.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/reports", func(rr chi.Router) {
			// writes are guarded by the Redis fixed-window limiter inside
			// the service; the read side gets coarse per-IP throttling
			rr.Post("/", reportsHandler.CreateReport)
			rr.Put("/{id}/confirm", reportsHandler.ConfirmReport)

			rr.Group(func(gr chi.Router) {
				gr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
				gr.Get("/", reportsHandler.ListReports)
			})
		})

		api.Group(func(gr chi.Router) {
			gr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			gr.Get("/offense-types", reportsHandler.ListOffenseTypes)
		})

		api.Get("/ws", liveHandler.Serve)
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:        port,
		Handler:     s.router,
		ReadTimeout: s.cfg.Http.ReadTimeout,
		// no WriteTimeout: /ws connections outlive any REST deadline, the
		// ws adapter sets its own per-write deadlines
		IdleTimeout: 30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}

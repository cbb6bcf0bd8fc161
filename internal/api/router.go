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

	"geotrack/internal/api/handlers/http/admin"
	"geotrack/internal/api/handlers/http/public"
	"geotrack/internal/api/handlers/http/system"
	"geotrack/internal/config"
	"geotrack/internal/middleware"
	"geotrack/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, deps map[string]system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.GeofenceService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.LocationService, svc.CheckService, svc.GeofenceService)
	systemHandler := system.NewHandler(logger, deps)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(cfg.RateLimit.AdminRPS, cfg.RateLimit.AdminBurst, cfg.RateLimit.VisitorTTL, logger))

			ar.Get("/stats", adminHandler.AdminStats)
			ar.Get("/entities/{entityID}/events", adminHandler.AdminEntityEvents)

			ar.Route("/geofences", func(gr chi.Router) {
				gr.Post("/", adminHandler.AdminGeofenceCreate)
				gr.Get("/", adminHandler.AdminGeofenceList)

				gr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminGeofenceGet)
					rr.Put("/", adminHandler.AdminGeofenceUpdate)
					rr.Delete("/", adminHandler.AdminGeofenceDelete)
				})
			})
		})

		// PUBLIC
		api.Route("/locations", func(pr chi.Router) {
			pr.Use(middleware.Limit(cfg.RateLimit.PublicRPS, cfg.RateLimit.PublicBurst, cfg.RateLimit.VisitorTTL, logger))
			pr.Post("/", publicHandler.LocationUpdate)
			pr.Post("/search", publicHandler.LocationSearch)
			pr.Get("/{entityID}", publicHandler.LocationGet)
			pr.Delete("/{entityID}", publicHandler.LocationDelete)
		})

		api.Route("/geofences", func(pr chi.Router) {
			pr.Use(middleware.Limit(cfg.RateLimit.PublicRPS, cfg.RateLimit.PublicBurst, cfg.RateLimit.VisitorTTL, logger))
			pr.Post("/check", publicHandler.GeofenceCheck)
			pr.Get("/", publicHandler.GeofenceListInBounds)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
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

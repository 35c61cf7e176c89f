// Package server exposes the bot's services over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SkinBot_Go/internal/access"
	"github.com/osse101/SkinBot_Go/internal/handler"
	"github.com/osse101/SkinBot_Go/internal/info"
	"github.com/osse101/SkinBot_Go/internal/inventory"
	"github.com/osse101/SkinBot_Go/internal/metrics"
	"github.com/osse101/SkinBot_Go/internal/skin"
	"github.com/osse101/SkinBot_Go/internal/valuation"
)

// Config holds listener and security settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

// Deps are the services behind the API
type Deps struct {
	Skins     skin.Service
	Inventory inventory.Service
	Valuation valuation.Engine
	Access    access.Service
	Market    handler.MarketStatus
	Info      *info.Loader

	// Checks run on /readyz, keyed by name
	Checks map[string]handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wraps it in an http.Server
func NewServer(cfg Config, deps Deps) *Server {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           newRouter(cfg.APIKey, cfg.TrustedProxies, maxBody, deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			WriteTimeout:      DefaultWriteTimeout,
		},
	}
}

func newRouter(apiKey string, trustedProxies []string, maxBody int64, deps Deps) chi.Router {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	// outermost first
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Checks))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	inv := handler.NewInventoryHandlers(deps.Inventory, deps.Skins, deps.Valuation, deps.Access)

	r.Route("/api/v1", func(r chi.Router) {
		if deps.Info != nil {
			r.Get("/info", handler.HandleGetInfo(deps.Info))
		}

		r.Get("/skins", handler.HandleGetSkin(deps.Skins))
		r.Get("/collections", handler.HandleGetCollection(deps.Skins))

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", inv.HandleGetInventory)
			r.Get("/valuation", inv.HandleGetValuation)
			r.Post("/add", inv.HandleAddItem)
			r.Post("/remove", inv.HandleRemoveItem)
		})

		r.Get("/market/status", handler.HandleMarketStatus(deps.Market))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/market/refresh", handler.HandleAdminMarketRefresh(deps.Market))
			r.Post("/block", handler.HandleAdminBlock(deps.Access))
			r.Post("/unblock", handler.HandleAdminUnblock(deps.Access))
			r.Get("/blocked", handler.HandleAdminListBlocked(deps.Access))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	slog.Default().Info(LogMsgServerStopped)
	return err
}

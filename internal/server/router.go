// Package server assembles the HTTP router with its middleware chain
package server

import (
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/coloringbook/backend/internal/config"
	"github.com/coloringbook/backend/internal/handlers"
	"github.com/coloringbook/backend/internal/middlewares"
)

// MaxRequestSize caps request bodies; artwork payloads are base64 raster data
const MaxRequestSize = 10 * 1024 * 1024 // 10MB

// Handlers groups the HTTP handlers mounted under /api
type Handlers struct {
	System        *handlers.SystemHandler
	ColoringPages *handlers.ColoringPagesHandler
	Artworks      *handlers.ArtworksHandler
	Stickers      *handlers.StickersHandler
}

// NewRouter builds the chi router with the full middleware chain,
// the swagger route, and all handler routes scoped to /api
func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger))
	r.Use(middlewares.RecoveryMiddleware(logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(MaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		h.System.RegisterRoutes(r)
		h.ColoringPages.RegisterRoutes(r)
		h.Artworks.RegisterRoutes(r)
		h.Stickers.RegisterRoutes(r)
	})

	return r
}

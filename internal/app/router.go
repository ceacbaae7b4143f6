package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/giladbarnea/assetvista-core/internal/http/handler"
	"github.com/giladbarnea/assetvista-core/internal/http/middleware"
	"github.com/giladbarnea/assetvista-core/internal/repository"
	"github.com/giladbarnea/assetvista-core/internal/security"
	"github.com/giladbarnea/assetvista-core/internal/service"
)

// RouterConfig carries everything the HTTP surface needs. All dependencies
// are interfaces or small values so tests can assemble a router with
// in-memory backends.
type RouterConfig struct {
	Logger     *slog.Logger
	Auth       service.AuthServiceInterface
	Cookies    *security.CookieManager
	SessionTTL time.Duration

	Redis                redis.UniversalClient
	LoginRateLimitPerMin int

	Assets      repository.AssetRepository
	Snapshots   repository.SnapshotRepository
	FXRates     repository.FXRateRepository
	Liquidation repository.LiquidationSettingsRepository
}

func NewRouter(c RouterConfig) http.Handler {
	authHandler := handler.NewAuthHandler(c.Auth, c.Cookies, c.SessionTTL, c.Logger)
	assetHandler := handler.NewAssetHandler(c.Assets, c.Logger)
	snapshotHandler := handler.NewSnapshotHandler(c.Snapshots, c.Logger)
	fxRateHandler := handler.NewFXRateHandler(c.FXRates, c.Logger)
	liquidationHandler := handler.NewLiquidationSettingsHandler(c.Liquidation, c.Logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(c.Logger))

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		if err := c.Redis.Ping(req.Context()).Err(); err != nil {
			c.Logger.Error("readiness check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.LoginRateLimit(c.Redis, c.LoginRateLimitPerMin, c.Logger)).
				Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)
		})

		// Every collection endpoint sits behind the session gate.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(c.Auth, c.Logger))

			r.Route("/assets", func(r chi.Router) {
				r.Get("/", assetHandler.List)
				r.Post("/", assetHandler.Create)
				r.Put("/", assetHandler.Update)
				r.Delete("/", assetHandler.Delete)
			})
			r.Route("/snapshots", func(r chi.Router) {
				r.Get("/", snapshotHandler.List)
				r.Post("/", snapshotHandler.Create)
				r.Put("/", snapshotHandler.Update)
				r.Delete("/", snapshotHandler.Delete)
			})
			r.Route("/fx-rates", func(r chi.Router) {
				r.Get("/", fxRateHandler.List)
				r.Post("/", fxRateHandler.Upsert)
				r.Put("/", fxRateHandler.Upsert)
				r.Delete("/", fxRateHandler.Delete)
			})
			r.Route("/liquidation-settings", func(r chi.Router) {
				r.Get("/", liquidationHandler.List)
				r.Post("/", liquidationHandler.Create)
				r.Put("/", liquidationHandler.Update)
				r.Delete("/", liquidationHandler.Delete)
			})
		})
	})

	return r
}

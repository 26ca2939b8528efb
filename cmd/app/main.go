package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"roam/cmd/fx/account_fx"
	"roam/cmd/fx/config_fx"
	"roam/cmd/fx/controllers_fx"
	"roam/cmd/fx/curator_fx"
	"roam/cmd/fx/db_fx"
	"roam/cmd/fx/itinerary_fx"
	"roam/cmd/fx/memcache_fx"
	"roam/cmd/fx/places_fx"
	"roam/cmd/fx/spotlight_fx"
	"roam/internal/api/controllers"
	"roam/internal/config"
	"roam/pkg/logging"
	"roam/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		places_fx.Module,
		curator_fx.Module,
		itinerary_fx.Module,
		memcache_fx.Module,
		spotlight_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.GetServerAddr(),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logging.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logging.Error().Err(err).Msg("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logging.Info().Msg("Stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	itineraryController *controllers.ItineraryController,
	spotlightController *controllers.SpotlightController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	RegisterRoutes(r, []byte(cfg.Auth.JWTSecret), itineraryController, spotlightController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtSecret []byte,
	itineraryController *controllers.ItineraryController,
	spotlightController *controllers.SpotlightController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/generate", middleware.JWTAuthMiddleware(jwtSecret), itineraryController.Generate)
	api.POST("/spotlight", spotlightController.Suggest)
}

package spotlight_fx

import (
	"go.uber.org/fx"
	"roam/internal/config"
	"roam/internal/models/response_models"
	"roam/internal/services"
	mem "roam/pkg/memcache"
	"roam/pkg/utils"
)

var Module = fx.Provide(provideSpotlightService)

func provideSpotlightService(
	cfg *config.Config,
	places services.PlacesServiceInterface,
	curator utils.CuratorClientInterface,
	cache mem.Store[[]response_models.SpotlightPlace],
) services.SpotlightServiceInterface {
	return services.NewSpotlightService(places, curator, cache, services.SpotlightConfig{
		CacheTTL:        cfg.Spotlight.CacheTTL,
		MinRating:       cfg.Spotlight.MinRating,
		DefaultRadiusKm: cfg.Spotlight.DefaultRadiusKm,
	})
}

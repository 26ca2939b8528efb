package places_fx

import (
	"go.uber.org/fx"
	"roam/internal/config"
	"roam/internal/services"
	"roam/pkg/utils"
)

var Module = fx.Provide(providePlacesClient)

func providePlacesClient(cfg *config.Config, breaker utils.BreakerOptions) services.PlacesServiceInterface {
	return services.NewGooglePlacesClient(services.PlacesConfig{
		APIKey:            cfg.Places.APIKey,
		BaseURL:           cfg.Places.BaseURL,
		Timeout:           cfg.Places.Timeout,
		RequestsPerSecond: cfg.Places.RequestsPerSecond,
		Burst:             cfg.Places.Burst,
		MaxResultCount:    cfg.Places.MaxResultCount,
		Breaker:           breaker,
	})
}

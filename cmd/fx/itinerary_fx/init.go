package itinerary_fx

import (
	"go.uber.org/fx"
	"roam/internal/services"
	"roam/pkg/utils"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(
	quota services.QuotaServiceInterface,
	places services.PlacesServiceInterface,
	curator utils.CuratorClientInterface,
) services.ItineraryServiceInterface {

	return services.NewItineraryService(quota, places, curator, services.NewRandFactory())
}

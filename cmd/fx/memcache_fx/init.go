package memcache_fx

import (
	"go.uber.org/fx"
	"roam/internal/models/response_models"
	mem "roam/pkg/memcache"
)

var Module = fx.Provide(provideSpotlightCache)

func provideSpotlightCache() mem.Store[[]response_models.SpotlightPlace] {
	return mem.NewTTLStore[[]response_models.SpotlightPlace]()
}

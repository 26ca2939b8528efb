package controllers_fx

import (
	"go.uber.org/fx"
	"roam/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewSpotlightController),
	fx.Provide(controllers.NewHealthController))

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"roam/internal/models/request_models"
	"roam/internal/models/response_models"
	"roam/internal/services"
	"roam/pkg/logging"
	"roam/pkg/utils"
)

type SpotlightController struct {
	spotlightService services.SpotlightServiceInterface
}

func NewSpotlightController(spotlightService services.SpotlightServiceInterface) *SpotlightController {
	return &SpotlightController{
		spotlightService: spotlightService,
	}
}

// Suggest godoc
// @Summary Spotlight suggestions
// @Description Five varied, highly rated venues near a coordinate. Results are cached per rounded coordinate.
// @Tags Spotlight
// @Accept json
// @Produce json
// @Param request body request_models.SpotlightRequest true "Location and optional radius in km"
// @Success 200 {object} response_models.SpotlightResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/spotlight [post]
func (sc *SpotlightController) Suggest(c *gin.Context) {
	var req request_models.SpotlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	suggestions, err := sc.spotlightService.Suggest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("spotlight error")
		utils.RespondError(c, http.StatusInternalServerError, "Failed to generate spotlight")
		return
	}

	c.JSON(http.StatusOK, response_models.SpotlightResponse{Suggestions: suggestions})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roam/internal/models/request_models"
	"roam/internal/models/response_models"
	"roam/internal/services"
	"roam/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Generate an itinerary
// @Description Build an ordered list of nearby stops for the requested vibe. Locked stops in currentItinerary are kept; seenPlaces are excluded. Consumes one generation from the caller's quota on success.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ItineraryRequest true "Itinerary preferences"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/generate [post]
func (ic *ItineraryController) Generate(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if req.SeenPlaces == nil {
		req.SeenPlaces = []string{}
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	stops, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.ItineraryResponse{Stops: stops})
}

package response_models

import "roam/internal/models/request_models"

type ItineraryResponse struct {
	Stops []request_models.Stop `json:"stops"`
}

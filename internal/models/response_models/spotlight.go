package response_models

type SpotlightPlace struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating,omitempty"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	PlaceID     string   `json:"placeId"`
}

type SpotlightResponse struct {
	Suggestions []SpotlightPlace `json:"suggestions"`
}

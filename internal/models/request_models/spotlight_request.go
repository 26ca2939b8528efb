package request_models

type SpotlightLocation struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng  *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

type SpotlightRequest struct {
	Location SpotlightLocation `json:"location" binding:"required"`
	Radius   float64           `json:"radius" binding:"omitempty,gt=0,lte=50"` // km, defaults from config
}

package request_models

type Location struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng  *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

// Stop is one itinerary entry. Locked stops are pinned by the caller and
// must come back unchanged on every reshuffle.
type Stop struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Locked      bool    `json:"locked"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	PlaceID     string  `json:"placeId"`
}

type ItineraryRequest struct {
	Location         Location `json:"location" binding:"required"`
	Radius           float64  `json:"radius" binding:"required,gt=0,lte=50"` // km
	GroupType        string   `json:"groupType" binding:"required"`
	Duration         string   `json:"duration" binding:"required"`
	Theme            string   `json:"theme" binding:"required"`
	CurrentItinerary []Stop   `json:"currentItinerary"`
	SeenPlaces       []string `json:"seenPlaces"`
}

// LockedStops returns the pinned stops in request order.
func (r ItineraryRequest) LockedStops() []Stop {
	locked := make([]Stop, 0, len(r.CurrentItinerary))
	for _, s := range r.CurrentItinerary {
		if s.Locked {
			locked = append(locked, s)
		}
	}
	return locked
}

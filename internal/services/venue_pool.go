package services

import (
	"fmt"
	"slices"

	"roam/internal/models/request_models"
	"roam/pkg/utils"
)

type candidateSource int

const (
	candidateFromSearch candidateSource = iota
	candidateFromLocked
)

// VenueCandidate is either a search result or a stop the caller locked.
// Use the accessors rather than the fields of either shape.
type VenueCandidate struct {
	source candidateSource
	place  PlaceResult
	stop   request_models.Stop
}

func CandidateFromSearch(p PlaceResult) VenueCandidate {
	return VenueCandidate{source: candidateFromSearch, place: p}
}

func CandidateFromLocked(s request_models.Stop) VenueCandidate {
	return VenueCandidate{source: candidateFromLocked, stop: s}
}

func (c VenueCandidate) IsLocked() bool {
	return c.source == candidateFromLocked
}

func (c VenueCandidate) Name() string {
	if c.IsLocked() {
		return c.stop.Name
	}
	return c.place.Name()
}

func (c VenueCandidate) Coordinate() (lat, lng float64) {
	if c.IsLocked() {
		return c.stop.Lat, c.stop.Lng
	}
	return c.place.Location.Latitude, c.place.Location.Longitude
}

func (c VenueCandidate) PlaceID() string {
	if c.IsLocked() {
		return c.stop.PlaceID
	}
	return c.place.ID
}

func (c VenueCandidate) Category() string {
	if c.IsLocked() {
		return c.stop.Category
	}
	return InferCategory(c.place.Types)
}

// Rating returns false when the venue has no rating to show.
func (c VenueCandidate) Rating() (float64, bool) {
	if c.IsLocked() || c.place.Rating == nil {
		return 0, false
	}
	return *c.place.Rating, true
}

// LockedStop returns the original stop for locked candidates.
func (c VenueCandidate) LockedStop() (request_models.Stop, bool) {
	return c.stop, c.IsLocked()
}

// VenuePool holds candidates in insertion order, indexed by display name.
type VenuePool struct {
	order  []VenueCandidate
	byName map[string]int
}

func newVenuePool(capacity int) *VenuePool {
	return &VenuePool{
		order:  make([]VenueCandidate, 0, capacity),
		byName: make(map[string]int, capacity),
	}
}

func (p *VenuePool) add(c VenueCandidate) bool {
	name := c.Name()
	if _, exists := p.byName[name]; exists {
		return false
	}
	p.byName[name] = len(p.order)
	p.order = append(p.order, c)
	return true
}

func (p *VenuePool) Lookup(name string) (VenueCandidate, bool) {
	i, ok := p.byName[name]
	if !ok {
		return VenueCandidate{}, false
	}
	return p.order[i], true
}

func (p *VenuePool) Candidates() []VenueCandidate {
	return p.order
}

func (p *VenuePool) Len() int {
	return len(p.order)
}

// AssembleVenuePool seeds the pool with locked stops, then adds sourced
// places whose names are neither already present nor in seen. Locked stops
// are exempt from the seen filter.
func AssembleVenuePool(locked []request_models.Stop, sourced []PlaceResult, seen []string, required int) (*VenuePool, error) {
	pool := newVenuePool(len(locked) + len(sourced))
	for _, s := range locked {
		pool.add(CandidateFromLocked(s))
	}

	seenSet := make(map[string]struct{}, len(seen))
	for _, name := range seen {
		seenSet[name] = struct{}{}
	}

	for _, p := range sourced {
		name := p.Name()
		if name == "" {
			continue
		}
		if _, wasSeen := seenSet[name]; wasSeen {
			continue
		}
		pool.add(CandidateFromSearch(p))
	}

	if pool.Len() < required {
		return nil, fmt.Errorf("%w: found %d venues, need %d", utils.ErrInsufficientVenues, pool.Len(), required)
	}
	return pool, nil
}

// placeCategories is checked in order; the first category owning any of the
// venue's types wins.
var placeCategories = []struct {
	name  string
	types []string
}{
	{"Food", []string{"restaurant", "cafe", "bar", "bakery"}},
	{"Sightseeing", []string{"tourist_attraction", "museum", "park", "art_gallery"}},
	{"Entertainment", []string{"movie_theater", "bowling_alley", "night_club", "amusement_park"}},
	{"Shopping", []string{"shopping_mall", "store", "book_store", "clothing_store"}},
	{"Activity", []string{"gym", "spa", "stadium", "dance_school", "fitness_center"}},
}

func InferCategory(types []string) string {
	for _, cat := range placeCategories {
		for _, t := range cat.types {
			if slices.Contains(types, t) {
				return cat.name
			}
		}
	}
	return "Other"
}

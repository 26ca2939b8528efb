package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"roam/internal/models/request_models"
	"roam/internal/models/response_models"
	"roam/pkg/logging"
	mem "roam/pkg/memcache"
	"roam/pkg/metrics"
	"roam/pkg/utils"
)

var spotlightQueries = []string{
	"restaurants",
	"cafes",
	"tourist attractions",
	"museums",
	"parks",
	"nightlife",
}

type SpotlightServiceInterface interface {
	Suggest(ctx context.Context, req request_models.SpotlightRequest) ([]response_models.SpotlightPlace, error)
}

type SpotlightConfig struct {
	CacheTTL        time.Duration
	MinRating       float64
	DefaultRadiusKm float64
}

type SpotlightService struct {
	places  PlacesServiceInterface
	curator utils.CuratorClientInterface
	cache   mem.Store[[]response_models.SpotlightPlace]
	cfg     SpotlightConfig
}

func NewSpotlightService(
	places PlacesServiceInterface,
	curator utils.CuratorClientInterface,
	cache mem.Store[[]response_models.SpotlightPlace],
	cfg SpotlightConfig,
) SpotlightServiceInterface {
	return &SpotlightService{
		places:  places,
		curator: curator,
		cache:   cache,
		cfg:     cfg,
	}
}

// SpotlightCacheKey rounds coordinates so nearby callers share an entry.
func SpotlightCacheKey(lat, lng float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lng)
}

func (s *SpotlightService) Suggest(ctx context.Context, req request_models.SpotlightRequest) ([]response_models.SpotlightPlace, error) {
	if req.Location.Lat == nil || req.Location.Lng == nil {
		return nil, fmt.Errorf("%w: location lat and lng are required", utils.ErrInvalidInput)
	}
	lat, lng := *req.Location.Lat, *req.Location.Lng
	radius := req.Radius
	if radius <= 0 {
		radius = s.cfg.DefaultRadiusKm
	}

	key := SpotlightCacheKey(lat, lng)
	if cached, ok := s.cache.Get(key); ok {
		metrics.SpotlightCacheLookups.WithLabelValues("hit").Inc()
		return slices.Clone(cached), nil
	}
	metrics.SpotlightCacheLookups.WithLabelValues("miss").Inc()

	candidates := s.gatherCandidates(ctx, lat, lng, radius)
	if len(candidates) == 0 {
		return []response_models.SpotlightPlace{}, nil
	}

	raw, err := s.curator.GenerateJSON(ctx, buildSpotlightPrompt(candidates))
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("key", key).Msg("spotlight curation failed")
		return nil, err
	}

	suggestions := enrichSuggestions(parseSpotlightSuggestions(raw), candidates)
	s.cache.Set(key, slices.Clone(suggestions), s.cfg.CacheTTL)

	logging.Ctx(ctx).Debug().Str("key", key).Int("suggestions", len(suggestions)).Msg("spotlight cached")
	return suggestions, nil
}

func (s *SpotlightService) gatherCandidates(ctx context.Context, lat, lng, radius float64) []PlaceResult {
	results := make([][]PlaceResult, len(spotlightQueries))

	var g errgroup.Group
	for i, phrase := range spotlightQueries {
		g.Go(func() error {
			results[i] = s.places.SearchText(ctx, PlaceQuery{Lat: lat, Lng: lng, RadiusKm: radius, Phrase: phrase})
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{})
	var out []PlaceResult
	for _, batch := range results {
		for _, p := range batch {
			if p.Rating == nil || *p.Rating < s.cfg.MinRating {
				continue
			}
			if _, dup := seen[p.Name()]; dup {
				continue
			}
			seen[p.Name()] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

func buildSpotlightPrompt(places []PlaceResult) string {
	var b strings.Builder
	b.WriteString("From this list of venues in the city area, pick 5 spotlight-worthy and varied options.\n")
	b.WriteString("Return JSON in format:\n")
	b.WriteString(`{"suggestions": [{ "name": string, "category": string, "description": string }]}`)
	b.WriteString("\n\nVenues:\n")
	for _, p := range places {
		fmt.Fprintf(&b, "- %s (%s) [⭐ %s]\n", p.Name(), SpotlightCategory(p.Types), formatNumber(p.RatingValue()))
	}
	return b.String()
}

type spotlightSuggestion struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// parseSpotlightSuggestions accepts a bare array or {"suggestions": [...]}.
// Anything else yields no suggestions.
func parseSpotlightSuggestions(raw string) []spotlightSuggestion {
	raw = strings.TrimSpace(raw)

	var list []spotlightSuggestion
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}

	var wrapped struct {
		Suggestions []spotlightSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil {
		return wrapped.Suggestions
	}
	return nil
}

func enrichSuggestions(suggestions []spotlightSuggestion, places []PlaceResult) []response_models.SpotlightPlace {
	byName := make(map[string]PlaceResult, len(places))
	for _, p := range places {
		byName[p.Name()] = p
	}

	out := make([]response_models.SpotlightPlace, 0, len(suggestions))
	for _, sug := range suggestions {
		sp := response_models.SpotlightPlace{
			Name:        sug.Name,
			Description: sug.Description,
			Category:    sug.Category,
		}
		if p, ok := byName[sug.Name]; ok {
			sp.Rating = p.Rating
			sp.Lat = p.Location.Latitude
			sp.Lng = p.Location.Longitude
			sp.PlaceID = p.ID
		}
		out = append(out, sp)
	}
	return out
}

// SpotlightCategory checks types in a fixed priority order.
func SpotlightCategory(types []string) string {
	has := make(map[string]bool, len(types))
	for _, t := range types {
		has[t] = true
	}
	switch {
	case has["restaurant"]:
		return "Restaurant"
	case has["cafe"]:
		return "Cafe"
	case has["museum"]:
		return "Museum"
	case has["park"]:
		return "Park"
	case has["night_club"]:
		return "Nightlife"
	default:
		return "Other"
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"
	"roam/internal/models/request_models"
	"roam/pkg/logging"
	"roam/pkg/metrics"
	"roam/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, userID string, req request_models.ItineraryRequest) ([]request_models.Stop, error)
}

// RandFactory returns a fresh random source for one request.
type RandFactory func() *rand.Rand

func NewRandFactory() RandFactory {
	return func() *rand.Rand {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

// SeededRandFactory yields identically seeded sources, so vibe and keyword
// picks repeat across calls.
func SeededRandFactory(seed1, seed2 uint64) RandFactory {
	return func() *rand.Rand {
		return rand.New(rand.NewPCG(seed1, seed2))
	}
}

type ItineraryService struct {
	quota   QuotaServiceInterface
	places  PlacesServiceInterface
	curator utils.CuratorClientInterface
	newRand RandFactory
}

func NewItineraryService(
	quota QuotaServiceInterface,
	places PlacesServiceInterface,
	curator utils.CuratorClientInterface,
	newRand RandFactory,
) ItineraryServiceInterface {
	if newRand == nil {
		newRand = NewRandFactory()
	}
	return &ItineraryService{
		quota:   quota,
		places:  places,
		curator: curator,
		newRand: newRand,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, userID string, req request_models.ItineraryRequest) ([]request_models.Stop, error) {
	start := time.Now()
	stops, err := s.generate(ctx, userID, req)
	metrics.ItineraryGenerations.WithLabelValues(generationOutcome(err)).Inc()

	log := logging.Ctx(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("user_id", userID).
			Str("location", req.Location.Name).
			Str("group", req.GroupType).Str("theme", req.Theme).Str("duration", req.Duration).
			Msg("itinerary generation failed")
		return nil, err
	}

	metrics.ItineraryStopsReturned.Observe(float64(len(stops)))
	log.Info().
		Str("user_id", userID).
		Str("location", req.Location.Name).
		Int("stops", len(stops)).
		Dur("elapsed", time.Since(start)).
		Msg("itinerary generated")
	return stops, nil
}

func (s *ItineraryService) generate(ctx context.Context, userID string, req request_models.ItineraryRequest) ([]request_models.Stop, error) {
	if req.Location.Lat == nil || req.Location.Lng == nil || req.Location.Name == "" {
		return nil, fmt.Errorf("%w: location with name, lat and lng is required", utils.ErrInvalidInput)
	}

	if _, err := s.quota.EnsureRemaining(ctx, userID); err != nil {
		return nil, err
	}

	rng := s.newRand()
	target := StopsForDuration(req.Duration)

	vibe, structure, err := SelectVibe(rng, req.GroupType, req.Theme, target)
	if err != nil {
		return nil, err
	}

	lat, lng := *req.Location.Lat, *req.Location.Lng
	queries := make([]PlaceQuery, len(structure))
	for i, archetype := range structure {
		queries[i] = PlaceQuery{
			Lat:          lat,
			Lng:          lng,
			RadiusKm:     req.Radius,
			Phrase:       PickKeyword(rng, archetype),
			LocationName: req.Location.Name,
		}
	}

	sourced := s.sourceVenues(ctx, queries)

	locked := req.LockedStops()
	pool, err := AssembleVenuePool(locked, sourced, req.SeenPlaces, target)
	if err != nil {
		logging.Ctx(ctx).Info().
			Str("vibe", vibe.Name).
			Str("location", req.Location.Name).
			Float64("radius_km", req.Radius).
			Int("sourced", len(sourced)).
			Msg("venue pool too small")
		return nil, err
	}

	lockedNames := make([]string, len(locked))
	for i, stop := range locked {
		lockedNames[i] = stop.Name
	}

	prompt := BuildItineraryPrompt(ItineraryPrompt{
		LocationName: req.Location.Name,
		GroupType:    req.GroupType,
		Duration:     req.Duration,
		Theme:        req.Theme,
		VibeName:     vibe.Name,
		Candidates:   pool.Candidates(),
		LockedNames:  lockedNames,
		TargetStops:  target,
	})

	raw, err := s.curator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	generated, err := ParseCuratedStops(raw)
	if err != nil {
		return nil, err
	}

	stops := ReconcileStops(generated, pool, locked, target)
	if len(stops) < target {
		logging.Ctx(ctx).Warn().
			Str("vibe", vibe.Name).
			Int("target", target).
			Int("returned", len(stops)).
			Msg("model chose venues outside the pool")
	}

	if _, err := s.quota.Debit(ctx, userID); err != nil {
		return nil, err
	}

	return stops, nil
}

// sourceVenues runs one search per query concurrently and concatenates the
// results in query order. Failed searches contribute nothing.
func (s *ItineraryService) sourceVenues(ctx context.Context, queries []PlaceQuery) []PlaceResult {
	results := make([][]PlaceResult, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		g.Go(func() error {
			results[i] = s.places.SearchVenues(ctx, q)
			return nil
		})
	}
	_ = g.Wait()

	var sourced []PlaceResult
	for i, r := range results {
		if len(r) == 0 {
			logging.Ctx(ctx).Debug().Str("query", queries[i].TextQuery()).Msg("no venues for query")
		}
		sourced = append(sourced, r...)
	}
	return sourced
}

func generationOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, utils.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, utils.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, utils.ErrQuotaExhausted):
		return "quota_exhausted"
	case errors.Is(err, utils.ErrNoMatchingVibe):
		return "no_matching_vibe"
	case errors.Is(err, utils.ErrInsufficientVenues):
		return "insufficient_venues"
	case errors.Is(err, utils.ErrMalformedModelOutput):
		return "malformed_model_output"
	case errors.Is(err, utils.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "error"
	}
}

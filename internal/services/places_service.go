package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
	"roam/pkg/logging"
	"roam/pkg/metrics"
	"roam/pkg/utils"
)

const placesFieldMask = "places.id,places.displayName,places.types,places.location,places.rating,places.userRatingCount"

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// PlaceResult is one entry of a Places text search response.
type PlaceResult struct {
	ID              string        `json:"id"`
	DisplayName     LocalizedText `json:"displayName"`
	Types           []string      `json:"types"`
	Location        LatLng        `json:"location"`
	Rating          *float64      `json:"rating,omitempty"`
	UserRatingCount int           `json:"userRatingCount"`
}

func (p PlaceResult) Name() string {
	return p.DisplayName.Text
}

// RatingValue treats a missing rating as zero.
func (p PlaceResult) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// PlaceQuery is one phrase searched near a coordinate.
type PlaceQuery struct {
	Lat          float64
	Lng          float64
	RadiusKm     float64
	Phrase       string
	LocationName string
}

// TextQuery appends the location label so the provider can disambiguate.
func (q PlaceQuery) TextQuery() string {
	if q.LocationName == "" {
		return q.Phrase
	}
	return fmt.Sprintf("%s in %s", q.Phrase, q.LocationName)
}

type PlacesServiceInterface interface {
	// SearchText returns raw results; transport failures yield an empty list.
	SearchText(ctx context.Context, q PlaceQuery) []PlaceResult
	// SearchVenues is SearchText followed by the two-tier quality filter.
	SearchVenues(ctx context.Context, q PlaceQuery) []PlaceResult
}

type PlacesConfig struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	MaxResultCount    int
	Breaker           utils.BreakerOptions
}

type GooglePlacesClient struct {
	HTTP           *http.Client
	APIKey         string
	BaseURL        string
	MaxResultCount int

	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]PlaceResult]
}

func NewGooglePlacesClient(cfg PlacesConfig) *GooglePlacesClient {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	maxResults := cfg.MaxResultCount
	if maxResults <= 0 {
		maxResults = 20
	}

	return &GooglePlacesClient{
		HTTP:           &http.Client{Timeout: cfg.Timeout},
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		MaxResultCount: maxResults,
		limiter:        rate.NewLimiter(limit, burst),
		cb:             utils.NewCircuitBreaker[[]PlaceResult]("places-api", cfg.Breaker),
	}
}

func (c *GooglePlacesClient) SearchVenues(ctx context.Context, q PlaceQuery) []PlaceResult {
	return FilterByQuality(c.SearchText(ctx, q))
}

func (c *GooglePlacesClient) SearchText(ctx context.Context, q PlaceQuery) []PlaceResult {
	start := time.Now()
	var places []PlaceResult
	err := c.limiter.Wait(ctx)
	if err == nil {
		places, err = c.cb.Execute(func() ([]PlaceResult, error) {
			return c.searchText(ctx, q)
		})
	}
	metrics.PlaceSearchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		result := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		metrics.PlaceSearches.WithLabelValues(result).Inc()
		logging.Ctx(ctx).Warn().Err(err).
			Str("query", q.TextQuery()).
			Float64("lat", q.Lat).Float64("lng", q.Lng).Float64("radius_km", q.RadiusKm).
			Msg("failed to fetch places")
		return []PlaceResult{}
	}

	metrics.PlaceSearches.WithLabelValues("ok").Inc()
	return places
}

type searchTextRequest struct {
	TextQuery      string       `json:"textQuery"`
	MaxResultCount int          `json:"maxResultCount"`
	LocationBias   locationBias `json:"locationBias"`
}

type locationBias struct {
	Circle biasCircle `json:"circle"`
}

type biasCircle struct {
	Center LatLng  `json:"center"`
	Radius float64 `json:"radius"` // meters
}

type searchTextResponse struct {
	Places []PlaceResult `json:"places"`
}

func (c *GooglePlacesClient) searchText(ctx context.Context, q PlaceQuery) ([]PlaceResult, error) {
	body, err := json.Marshal(searchTextRequest{
		TextQuery:      q.TextQuery(),
		MaxResultCount: c.MaxResultCount,
		LocationBias: locationBias{Circle: biasCircle{
			Center: LatLng{Latitude: q.Lat, Longitude: q.Lng},
			Radius: q.RadiusKm * 1000,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("places encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", placesFieldMask)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("places bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}
	if payload.Places == nil {
		return []PlaceResult{}, nil
	}
	return payload.Places, nil
}

const (
	highQualityMinRating = 4.0
	highQualityMinCount  = 20
	highQualityMinimum   = 5
	goodQualityMinRating = 3.0
	goodQualityMinCount  = 5
)

// FilterByQuality keeps well-reviewed places. When fewer than five clear the
// strict bar, the looser bar replaces it so small towns still yield results.
func FilterByQuality(places []PlaceResult) []PlaceResult {
	high := filterPlaces(places, highQualityMinRating, highQualityMinCount)
	if len(high) >= highQualityMinimum {
		return high
	}
	return filterPlaces(places, goodQualityMinRating, goodQualityMinCount)
}

func filterPlaces(places []PlaceResult, minRating float64, minCount int) []PlaceResult {
	out := make([]PlaceResult, 0, len(places))
	for _, p := range places {
		if p.RatingValue() >= minRating && p.UserRatingCount > minCount {
			out = append(out, p)
		}
	}
	return out
}

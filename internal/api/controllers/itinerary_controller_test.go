package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"roam/internal/models/request_models"
	"roam/internal/models/response_models"
	"roam/pkg/utils"
)

type fakeItineraryService struct {
	stops  []request_models.Stop
	err    error
	userID string
	req    request_models.ItineraryRequest
}

func (f *fakeItineraryService) GenerateItinerary(ctx context.Context, userID string, req request_models.ItineraryRequest) ([]request_models.Stop, error) {
	f.userID = userID
	f.req = req
	return f.stops, f.err
}

func newItineraryRouter(svc *fakeItineraryService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/generate", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}, NewItineraryController(svc).Generate)
	return r
}

const validBody = `{
	"location": {"name": "Austin", "lat": 30.2672, "lng": -97.7431},
	"radius": 5,
	"groupType": "Friends",
	"duration": "Half day",
	"theme": "Foodie",
	"currentItinerary": [{"name": "Franklin Barbecue", "locked": true, "lat": 30.27, "lng": -97.73, "placeId": "fb"}]
}`

func TestItineraryController_Generate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		userID     string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{name: "success", body: validBody, userID: "u1", wantStatus: http.StatusOK},
		{name: "malformed json", body: `{"location":`, userID: "u1", wantStatus: http.StatusBadRequest},
		{name: "missing location", body: `{"radius":5,"groupType":"Solo","duration":"Quick","theme":"Relaxing"}`, userID: "u1", wantStatus: http.StatusBadRequest},
		{name: "radius too large", body: `{"location":{"name":"A","lat":1,"lng":1},"radius":80,"groupType":"Solo","duration":"Quick","theme":"Relaxing"}`, userID: "u1", wantStatus: http.StatusBadRequest},
		{name: "no caller", body: validBody, wantStatus: http.StatusUnauthorized, wantMsg: "Not authenticated"},
		{name: "quota exhausted", body: validBody, userID: "u1", svcErr: utils.ErrQuotaExhausted, wantStatus: http.StatusForbidden, wantMsg: "Usage limit reached."},
		{name: "no vibe", body: validBody, userID: "u1", svcErr: fmt.Errorf("couldn't find any vibes for 'Aliens': %w", utils.ErrNoMatchingVibe), wantStatus: http.StatusNotFound},
		{name: "insufficient venues", body: validBody, userID: "u1", svcErr: utils.ErrInsufficientVenues, wantStatus: http.StatusNotFound,
			wantMsg: "Sorry, we couldn't find enough high-quality places for your request. Please try a wider radius."},
		{name: "malformed model output", body: validBody, userID: "u1", svcErr: utils.ErrMalformedModelOutput, wantStatus: http.StatusInternalServerError,
			wantMsg: "AI generation failed: AI response was not in the expected format"},
		{name: "unexpected", body: validBody, userID: "u1", svcErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeItineraryService{
				stops: []request_models.Stop{{Name: "Franklin Barbecue", Locked: true, Lat: 30.27, Lng: -97.73, PlaceID: "fb"}},
				err:   tt.svcErr,
			}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newItineraryRouter(svc, tt.userID).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var resp response_models.ItineraryResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(resp.Stops) != 1 || !resp.Stops[0].Locked {
					t.Errorf("unexpected stops: %+v", resp.Stops)
				}
				if svc.userID != "u1" {
					t.Errorf("service got user %q", svc.userID)
				}
				if svc.req.SeenPlaces == nil {
					t.Error("seenPlaces should default to an empty list")
				}
				if len(svc.req.LockedStops()) != 1 {
					t.Error("locked stop not bound from request")
				}
				return
			}

			var resp utils.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Message == "" {
				t.Error("error responses must carry a message")
			}
			if tt.wantMsg != "" && resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"roam/internal/models/request_models"
	"roam/internal/models/response_models"
	"roam/pkg/utils"
)

type fakeSpotlightService struct {
	out []response_models.SpotlightPlace
	err error
	req request_models.SpotlightRequest
}

func (f *fakeSpotlightService) Suggest(ctx context.Context, req request_models.SpotlightRequest) ([]response_models.SpotlightPlace, error) {
	f.req = req
	return f.out, f.err
}

func TestSpotlightController_Suggest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "success", body: `{"location":{"lat":51.5,"lng":-0.12}}`, wantStatus: http.StatusOK},
		{name: "missing lat", body: `{"location":{"lng":-0.12}}`, wantStatus: http.StatusBadRequest},
		{name: "upstream failure", body: `{"location":{"lat":51.5,"lng":-0.12}}`, svcErr: errors.New("gemini down"), wantStatus: http.StatusInternalServerError},
		{name: "invalid input", body: `{"location":{"lat":51.5,"lng":-0.12}}`, svcErr: utils.ErrInvalidInput, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSpotlightService{
				out: []response_models.SpotlightPlace{{Name: "Borough Market", Category: "Other", PlaceID: "bm"}},
				err: tt.svcErr,
			}
			r := gin.New()
			r.POST("/api/spotlight", NewSpotlightController(svc).Suggest)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/spotlight", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			switch tt.wantStatus {
			case http.StatusOK:
				var resp response_models.SpotlightResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(resp.Suggestions) != 1 || resp.Suggestions[0].PlaceID != "bm" {
					t.Errorf("unexpected suggestions: %+v", resp.Suggestions)
				}
			case http.StatusInternalServerError:
				var resp utils.APIResponse
				_ = json.Unmarshal(w.Body.Bytes(), &resp)
				if resp.Message != "Failed to generate spotlight" {
					t.Errorf("message = %q", resp.Message)
				}
			}
		})
	}
}

func TestHealthController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		check      HealthCheck
		wantStatus int
	}{
		{name: "healthy", check: func(ctx context.Context) error { return nil }, wantStatus: http.StatusOK},
		{name: "db down", check: func(ctx context.Context) error { return errors.New("dial tcp: refused") }, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/healthz", NewHealthController(tt.check).Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

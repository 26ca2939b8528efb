package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"roam/pkg/logging"
	"roam/pkg/utils"
)

var testSecret = []byte("test-secret")

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	valid, err := utils.CreateToken(testSecret, userID, "user", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	expired, _ := utils.CreateToken(testSecret, userID, "user", -time.Minute)
	foreign, _ := utils.CreateToken([]byte("other-secret"), userID, "user", time.Hour)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			r := gin.New()
			r.GET("/p", JWTAuthMiddleware(testSecret), func(c *gin.Context) {
				seen = c.GetString("user_id")
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && seen != userID.String() {
				t.Errorf("user_id = %q, want %q", seen, userID)
			}
		})
	}
}

func TestTraceIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromCtx string
	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger())
	r.GET("/t", func(c *gin.Context) {
		fromCtx = logging.TraceIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-Trace-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Trace-ID"); got != "abc-123" {
		t.Errorf("response trace id = %q", got)
	}
	if fromCtx != "abc-123" {
		t.Errorf("context trace id = %q", fromCtx)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
	if _, err := uuid.Parse(w.Header().Get("X-Trace-ID")); err != nil {
		t.Errorf("generated trace id is not a uuid: %v", err)
	}
}

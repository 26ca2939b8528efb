package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"roam/pkg/logging"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	msgInsufficientVenues = "Sorry, we couldn't find enough high-quality places for your request. Please try a wider radius."
	msgQuotaExhausted     = "Usage limit reached."
)

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels to statuses. Capacity errors get
// actionable messages; anything unexpected carries the underlying error text.
func HandleServiceError(c *gin.Context, err error) {
	log := logging.Ctx(c.Request.Context())

	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, ErrQuotaExhausted):
		RespondError(c, http.StatusForbidden, msgQuotaExhausted)
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrNoMatchingVibe):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInsufficientVenues):
		RespondError(c, http.StatusNotFound, msgInsufficientVenues)
	case errors.Is(err, ErrMalformedModelOutput), errors.Is(err, ErrUpstreamUnavailable):
		log.Error().Err(err).Msg("AI generation failed")
		RespondError(c, http.StatusInternalServerError, "AI generation failed: "+err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Error().Err(err).Msg("database error")
		RespondError(c, http.StatusInternalServerError, err.Error())
	default:
		log.Error().Err(err).Msg("unexpected error")
		RespondError(c, http.StatusInternalServerError, err.Error())
	}
}

package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"roam/pkg/utils"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	check HealthCheck
}

func NewHealthController(check HealthCheck) *HealthController {
	return &HealthController{check: check}
}

// Health godoc
// @Summary Liveness and database reachability
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /healthz [get]
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := hc.check(ctx); err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, "database unreachable: "+err.Error())
		return
	}
	utils.RespondSuccess(c, gin.H{"database": "ok"}, "healthy")
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func() bool

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker   HealthChecker
	lockHealthChecker HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Lock      string `json:"maintenance_lock"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// lockHealthChecker is nil when the maintenance lock is disabled.
func NewHealthController(dbHealthChecker, lockHealthChecker HealthChecker) *HealthController {
	return &HealthController{
		dbHealthChecker:   dbHealthChecker,
		lockHealthChecker: lockHealthChecker,
	}
}

// Check handles GET /health requests.
// The API is degraded without a database; a lost lock backend only disables
// cross-process de-duplication of maintenance.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"

	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	} else {
		status = "degraded"
	}

	lockStatus := "disabled"
	if h.lockHealthChecker != nil {
		lockStatus = "disconnected"
		if h.lockHealthChecker() {
			lockStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Lock:      lockStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	auditHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	AuditStore string `json:"audit_store"`
	Timestamp  string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil auditHealthChecker reports the audit store as disabled.
func NewHealthController(dbHealthChecker, auditHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		auditHealthChecker: auditHealthChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	}

	auditStatus := "disabled"
	if h.auditHealthChecker != nil {
		auditStatus = "disconnected"
		if h.auditHealthChecker() {
			auditStatus = "connected"
		}
	}

	response := HealthResponse{
		Status:     "ok",
		Database:   dbStatus,
		AuditStore: auditStatus,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}

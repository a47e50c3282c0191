package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yasinqurni/m-app-server/internal/response"
)

// Pinger reports store reachability.
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck reports 200 when the database answers a ping, 503 otherwise.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "healthy"
	if err := h.db.Ping(); err != nil {
		dbStatus = "unhealthy"
	}

	status := http.StatusOK
	if dbStatus != "healthy" {
		status = http.StatusServiceUnavailable
	}

	response.Success(c, status, "Health check completed", gin.H{
		"status":    dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": gin.H{
			"database": dbStatus,
		},
	})
}

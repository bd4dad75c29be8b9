package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthCheckTimeout = 5 * time.Second

	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

type healthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]healthCheck `json:"checks"`
}

// HandleHealth opens a database connection and pings it. It answers
// 503 when the database cannot be reached.
func (h *handlerImpl) HandleHealth(c *gin.Context) {
	response := healthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.env,
		Checks:      make(map[string]healthCheck, 1),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	elapsed := time.Since(start)
	if err != nil {
		h.logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msg("database health check failed")

		response.Status = statusUnhealthy
		response.Checks["database"] = healthCheck{
			Status:       statusUnhealthy,
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	h.logger.Debug().
		Dur("response_time", elapsed).
		Msg("database health check passed")
	response.Checks["database"] = healthCheck{
		Status:       statusHealthy,
		ResponseTime: elapsed.String(),
	}
	c.JSON(http.StatusOK, response)
}

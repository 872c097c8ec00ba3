package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/catalog/internal/database"
)

const (
	statusHealthy   = "Healthy"
	statusUnhealthy = "Unhealthy"
)

// health contains the liveness and readiness handlers.
type health struct {
	db      database.Client
	timeout time.Duration
}

type healthCheck struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Exception string `json:"exception"`
	Duration  string `json:"duration"`
}

type healthReport struct {
	Status string        `json:"status"`
	Checks []healthCheck `json:"checks"`
}

///// Live
////
//

// Live reports the process as alive. It performs no downstream call.
func (h *health) Live(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

///// Ready
////
//

// Ready probes the database within the configured timeout and renders
// the readiness report.
func (h *health) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	duration := time.Since(start)

	report := healthReport{
		Status: statusHealthy,
		Checks: []healthCheck{
			{
				Name:      "database",
				Status:    statusHealthy,
				Exception: "None",
				Duration:  duration.String(),
			},
		},
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusServiceUnavailable
		report.Status = statusUnhealthy
		report.Checks[0].Status = statusUnhealthy
		report.Checks[0].Exception = err.Error()
	}

	return c.JSON(status, report)
}

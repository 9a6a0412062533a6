package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the payload returned by the health endpoints.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Uptime  string                 `json:"uptime,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of a single readiness check.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthChecker reports the readiness of a named dependency.
type HealthChecker interface {
	Name() string
	Check() error
}

// HealthCheckFunc adapts a function to the HealthChecker interface.
type HealthCheckFunc struct {
	CheckName string
	Fn        func() error
}

// Name implements HealthChecker.
func (f HealthCheckFunc) Name() string { return f.CheckName }

// Check implements HealthChecker.
func (f HealthCheckFunc) Check() error { return f.Fn() }

// RegisterHealthRoutes registers /health and /ready endpoints without any
// dependency checks. /ready always reports ready.
func RegisterHealthRoutes(router *gin.Engine, serviceName, version string) {
	RegisterHealthRoutesWithChecks(router, serviceName, version)
}

// RegisterHealthRoutesWithChecks registers /health (liveness) and /ready
// (readiness) endpoints. /ready runs the given checks and returns 503 when
// any of them fail.
func RegisterHealthRoutesWithChecks(router *gin.Engine, serviceName, version string, checks ...HealthChecker) {
	started := time.Now()

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: serviceName,
			Version: version,
			Uptime:  formatUptime(time.Since(started)),
		})
	}

	router.GET("/health", healthHandler)
	router.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		resp := HealthResponse{
			Status:  "ready",
			Service: serviceName,
			Version: version,
		}

		if len(checks) > 0 {
			resp.Checks = make(map[string]CheckResult, len(checks))
			for _, check := range checks {
				result := CheckResult{Status: "ok"}
				if err := check.Check(); err != nil {
					result.Status = "failed"
					result.Error = err.Error()
					resp.Status = "not ready"
				}
				resp.Checks[check.Name()] = result
			}
		}

		if resp.Status != "ready" {
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	})
}

// formatUptime renders a duration as a compact "1d2h3m4s" style string.
func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)

	days := int64(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int64(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int64(d / time.Second)

	out := ""
	if days > 0 {
		out += strconv.FormatInt(days, 10) + "d"
	}
	if hours > 0 || out != "" {
		out += strconv.FormatInt(hours, 10) + "h"
	}
	if minutes > 0 || out != "" {
		out += strconv.FormatInt(minutes, 10) + "m"
	}
	out += strconv.FormatInt(seconds, 10) + "s"
	return out
}

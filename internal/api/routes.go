package api

import (
	"github.com/gin-gonic/gin"

	"github.com/datacube/topic-search/internal/metrics"
)

// Routes returns a route registrar for the topic endpoints plus /metrics.
func Routes(h *Handler, m *metrics.Metrics) func(*gin.Engine) {
	return func(engine *gin.Engine) {
		// Registered before the middleware so scrapes stay out of the
		// request histograms.
		engine.GET("/metrics", metrics.Handler())
		if m != nil {
			engine.Use(m.Middleware())
		}

		v1 := engine.Group("/api/v1")
		{
			v1.GET("/topic/:topic", h.Topic)
			v1.GET("/content-summary", h.Summary)
		}
	}
}

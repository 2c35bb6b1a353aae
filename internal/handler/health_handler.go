package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
)

// HealthHandler serves liveness and welcome endpoints
type HealthHandler struct {
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startTime: time.Now()}
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, c *app.RequestContext) {
	OK(c, "ok", map[string]interface{}{
		"status": "healthy",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Index handles GET /
func (h *HealthHandler) Index(ctx context.Context, c *app.RequestContext) {
	OK(c, "UAPI management service", nil)
}

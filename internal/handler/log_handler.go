package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/logview"
)

// LogHandler serves the log inspection endpoints
type LogHandler struct {
	viewer *logview.Viewer
	logger *slog.Logger
}

// NewLogHandler creates a new log handler
func NewLogHandler(viewer *logview.Viewer, logger *slog.Logger) *LogHandler {
	return &LogHandler{
		viewer: viewer,
		logger: logger,
	}
}

// Errors handles GET /logs/error
func (h *LogHandler) Errors(ctx context.Context, c *app.RequestContext) {
	h.tail(c, logview.KindError)
}

// Access handles GET /logs/access
func (h *LogHandler) Access(ctx context.Context, c *app.RequestContext) {
	h.tail(c, logview.KindAccess)
}

// All handles GET /logs/all
func (h *LogHandler) All(ctx context.Context, c *app.RequestContext) {
	h.tail(c, logview.KindAll)
}

// Search handles GET /logs/search?keyword=...&type=...
func (h *LogHandler) Search(ctx context.Context, c *app.RequestContext) {
	keyword := c.Query("keyword")
	kind := c.Query("type")
	if kind == "" {
		kind = logview.KindAll
	}

	lines, err := h.viewer.Search(kind, keyword)
	if err != nil {
		h.logger.Warn("log search failed", "type", kind, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "logs searched", map[string]interface{}{
		"keyword": keyword,
		"type":    kind,
		"count":   len(lines),
		"lines":   lines,
	})
}

// Info handles GET /logs/info
func (h *LogHandler) Info(ctx context.Context, c *app.RequestContext) {
	stats, err := h.viewer.FileInfo()
	if err != nil {
		h.logger.Warn("log info failed", "error", err)
		Fail(c, err)
		return
	}

	OK(c, "log files retrieved", stats)
}

func (h *LogHandler) tail(c *app.RequestContext, kind string) {
	n := logview.DefaultTailLines
	if raw := c.Query("lines"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			BadRequest(c, "lines must be a positive integer")
			return
		}
		n = parsed
	}

	lines, err := h.viewer.Tail(kind, n)
	if err != nil {
		h.logger.Warn("log tail failed", "type", kind, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "logs retrieved", map[string]interface{}{
		"type":  kind,
		"count": len(lines),
		"lines": lines,
	})
}

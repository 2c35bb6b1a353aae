package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/config"
)

// 日志文件名沿用线上约定，日志查看接口按同名文件读取
const (
	AllLogFile    = "all.log"
	ErrorLogFile  = "error.log"
	AccessLogFile = "access.log"
)

var accessLogger *slog.Logger

// Setup initializes the logging system.
//
// Three sinks are maintained: all.log receives every record, error.log
// receives warn and above, access.log receives request completion lines
// written through AccessLogger. Each file rotates by size via lumberjack.
func Setup(cfg config.LogConfig) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	handlers := []slog.Handler{
		newHandler(cfg, rotatingWriter(cfg, AllLogFile), level),
		newHandler(cfg, rotatingWriter(cfg, ErrorLogFile), slog.LevelWarn),
	}
	if cfg.Console {
		handlers = append(handlers, newHandler(cfg, os.Stdout, level))
	}

	slog.SetDefault(slog.New(newFanoutHandler(handlers...)))

	accessHandlers := []slog.Handler{
		newHandler(cfg, rotatingWriter(cfg, AccessLogFile), slog.LevelInfo),
	}
	if cfg.Console {
		accessHandlers = append(accessHandlers, newHandler(cfg, os.Stdout, level))
	}
	accessLogger = slog.New(newFanoutHandler(accessHandlers...))

	slog.Info("logger initialized successfully",
		"level", cfg.Level,
		"format", cfg.Format,
		"dir", cfg.Dir,
	)

	return nil
}

// AccessLogger returns the logger bound to the access sink.
// Falls back to the default logger before Setup runs.
func AccessLogger() *slog.Logger {
	if accessLogger == nil {
		return slog.Default()
	}
	return accessLogger
}

func rotatingWriter(cfg config.LogConfig, name string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
}

func newHandler(cfg config.LogConfig, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize time format to RFC3339 with timezone
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "time",
					Value: slog.StringValue(a.Value.Time().Format("2006-01-02T15:04:05.000Z07:00")),
				}
			}
			return a
		},
	}

	if cfg.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLevel parses log level string to slog.Level
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

// fanoutHandler dispatches each record to every child handler that accepts
// its level.
type fanoutHandler struct {
	handlers []slog.Handler
}

func newFanoutHandler(handlers ...slog.Handler) slog.Handler {
	return &fanoutHandler{handlers: handlers}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	children := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		children[i] = handler.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: children}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	children := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		children[i] = handler.WithGroup(name)
	}
	return &fanoutHandler{handlers: children}
}

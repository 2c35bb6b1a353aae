package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// SlogAdapter adapts slog to Hertz's hlog interface so framework logs land
// in the same sinks as application logs.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new Hertz logger adapter backed by slog
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Trace(v ...interface{})  { a.logger.Debug(sprint(v...)) }
func (a *SlogAdapter) Debug(v ...interface{})  { a.logger.Debug(sprint(v...)) }
func (a *SlogAdapter) Info(v ...interface{})   { a.logger.Info(sprint(v...)) }
func (a *SlogAdapter) Notice(v ...interface{}) { a.logger.Info(sprint(v...)) }
func (a *SlogAdapter) Warn(v ...interface{})   { a.logger.Warn(sprint(v...)) }
func (a *SlogAdapter) Error(v ...interface{})  { a.logger.Error(sprint(v...)) }
func (a *SlogAdapter) Fatal(v ...interface{})  { a.logger.Error(sprint(v...)) }

func (a *SlogAdapter) Tracef(format string, v ...interface{})  { a.logger.Debug(sprintf(format, v...)) }
func (a *SlogAdapter) Debugf(format string, v ...interface{})  { a.logger.Debug(sprintf(format, v...)) }
func (a *SlogAdapter) Infof(format string, v ...interface{})   { a.logger.Info(sprintf(format, v...)) }
func (a *SlogAdapter) Noticef(format string, v ...interface{}) { a.logger.Info(sprintf(format, v...)) }
func (a *SlogAdapter) Warnf(format string, v ...interface{})   { a.logger.Warn(sprintf(format, v...)) }
func (a *SlogAdapter) Errorf(format string, v ...interface{})  { a.logger.Error(sprintf(format, v...)) }
func (a *SlogAdapter) Fatalf(format string, v ...interface{})  { a.logger.Error(sprintf(format, v...)) }

func (a *SlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	a.logger.DebugContext(ctx, sprintf(format, v...))
}

func (a *SlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	a.logger.DebugContext(ctx, sprintf(format, v...))
}

func (a *SlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	a.logger.InfoContext(ctx, sprintf(format, v...))
}

func (a *SlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	a.logger.InfoContext(ctx, sprintf(format, v...))
}

func (a *SlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	a.logger.WarnContext(ctx, sprintf(format, v...))
}

func (a *SlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	a.logger.ErrorContext(ctx, sprintf(format, v...))
}

func (a *SlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	a.logger.ErrorContext(ctx, sprintf(format, v...))
}

// SetLevel is a no-op: slog level is fixed at Setup time.
func (a *SlogAdapter) SetLevel(level hlog.Level) {}

// SetOutput is a no-op: slog output is fixed at Setup time.
func (a *SlogAdapter) SetOutput(writer io.Writer) {}

func sprint(v ...interface{}) string {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v...)
}

func sprintf(format string, v ...interface{}) string {
	return fmt.Sprintf(format, v...)
}

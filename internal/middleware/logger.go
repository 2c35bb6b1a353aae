package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/TeenaWhiteGabrial/UAPI-service/pkg/logger"
)

// RequestIDKey 请求 ID 的响应头
const RequestIDKey = "X-Request-ID"

// Logger 请求日志中间件。
// 完成行写入 access 日志，4xx/5xx 以 warn/error 级别记录，
// 经由全局日志分发自然落入 error.log。
func Logger() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())

		// 健康检查不记日志
		skipLogging := path == "/uapi-manage/health" || path == "/uapi-manage/"

		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		c.Next(ctx)

		if skipLogging {
			return
		}

		latency := time.Since(start)
		statusCode := c.Response.StatusCode()

		log := slog.Default().With(
			"request_id", requestID,
			"method", string(c.Method()),
			"path", path,
			"client_ip", c.ClientIP(),
			"status", statusCode,
			"latency_ms", latency.Milliseconds(),
		)

		switch {
		case statusCode >= 500:
			log.Error("request completed with server error")
		case statusCode >= 400:
			log.Warn("request completed with client error")
		default:
			logger.AccessLogger().Info("request completed",
				"request_id", requestID,
				"method", string(c.Method()),
				"path", path,
				"status", statusCode,
				"latency_ms", latency.Milliseconds(),
			)
		}
	}
}

// GetRequestID 从响应头中获取请求 ID
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Recovery 恢复中间件，捕获 panic 并返回统一的 500 响应
func Recovery() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				stack := string(debug.Stack())

				slog.Default().With(
					"request_id", GetRequestID(c),
					"method", string(c.Method()),
					"path", string(c.Path()),
					"panic", fmt.Sprintf("%v", err),
				).Error("panic recovered", "stack", stack)

				c.JSON(consts.StatusInternalServerError, utils.H{
					"code":    consts.StatusInternalServerError,
					"message": "internal server error",
				})
				c.Abort()
			}
		}()

		c.Next(ctx)
	}
}

package middleware

import (
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

// CORS 跨域配置，platform 为自定义请求头需显式放行
func CORS() app.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", "platform", RequestIDKey},
		ExposeHeaders: []string{RequestIDKey},
		MaxAge:        24 * time.Hour,
	})
}

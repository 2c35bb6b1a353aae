// Package router wires HTTP routes to handlers.
package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/auth"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/handler"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/middleware"
)

// Handlers holds every handler the router mounts.
type Handlers struct {
	User    *handler.UserHandler
	Project *handler.ProjectHandler
	Api     *handler.ApiHandler
	Log     *handler.LogHandler
	Health  *handler.HealthHandler
}

// Setup registers all routes on the Hertz server.
func Setup(h *server.Hertz, handlers *Handlers, codec *auth.Codec, sessions *auth.RevocationSet) {
	h.Use(middleware.Recovery())
	h.Use(middleware.CORS())
	h.Use(middleware.Logger())

	root := h.Group("/uapi-manage")

	// 开放接口
	root.GET("/health", handlers.Health.Health)
	root.GET("/", handlers.Health.Index)

	// 登录只做平台校验,不要求令牌;
	// 注销只要求 Bearer 前缀合法,已吊销的令牌重复注销仍然成功
	authGroup := root.Group("/auth")
	authGroup.POST("/login", middleware.Platform(), handlers.User.Login)
	authGroup.POST("/logout", middleware.BearerToken(), handlers.User.Logout)

	// 其余业务接口都在令牌门禁之后
	protected := root.Group("")
	protected.Use(middleware.TokenAuth(codec, sessions))

	users := protected.Group("/users")
	users.POST("", handlers.User.Create)
	users.GET("", handlers.User.List)
	users.GET("/current", handlers.User.GetCurrent)
	users.GET("/:id", handlers.User.Get)
	users.POST("/:id/update", handlers.User.Update)
	users.POST("/:id/delete", handlers.User.Delete)

	projects := protected.Group("/projects")
	projects.POST("", handlers.Project.Create)
	projects.GET("", handlers.Project.List)
	projects.GET("/:id", handlers.Project.Get)
	projects.POST("/:id/update", handlers.Project.Update)
	projects.POST("/:id/delete", handlers.Project.Delete)
	projects.GET("/:id/apis", handlers.Api.ListByProject)
	projects.POST("/:id/apis/delete", handlers.Api.DeleteByProject)

	apis := protected.Group("/apis")
	apis.POST("", handlers.Api.Create)
	apis.GET("", handlers.Api.List)
	apis.GET("/:id", handlers.Api.Get)
	apis.POST("/:id/update", handlers.Api.Update)
	apis.POST("/:id/delete", handlers.Api.Delete)

	logs := protected.Group("/logs")
	logs.GET("/error", handlers.Log.Errors)
	logs.GET("/access", handlers.Log.Access)
	logs.GET("/all", handlers.Log.All)
	logs.GET("/search", handlers.Log.Search)
	logs.GET("/info", handlers.Log.Info)
}

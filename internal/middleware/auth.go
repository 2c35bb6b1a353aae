package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/auth"
)

// RequestContext 注入键
const (
	UserIDKey   = "user_id"
	RawTokenKey = "raw_token"
	PlatformKey = "platform"
)

// bearerPrefix 前缀匹配是大小写敏感的字面量匹配
const bearerPrefix = "Bearer "

// 平台枚举，platform 头必须取其一
var recognizedPlatforms = map[string]bool{
	"web":    true,
	"mobile": true,
	"api":    true,
}

// TokenAuth 校验 Authorization 头中的 Bearer 令牌。
// 通过后把用户 ID 与原始令牌注入 RequestContext；
// 不校验用户是否仍然存在或处于激活状态，那是下游处理器的职责。
func TokenAuth(codec *auth.Codec, sessions *auth.RevocationSet) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		raw := string(c.GetHeader("Authorization"))
		if !strings.HasPrefix(raw, bearerPrefix) {
			abortUnauthenticated(c, "missing or malformed authorization header")
			return
		}

		token := strings.TrimPrefix(raw, bearerPrefix)
		if sessions.IsRevoked(token) {
			abortUnauthenticated(c, "token has been revoked")
			return
		}

		userID, err := codec.DecodeToken(token)
		if err != nil {
			abortUnauthenticated(c, "invalid token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(RawTokenKey, token)
		c.Next(ctx)
	}
}

// BearerToken 只校验 Authorization 头的 Bearer 前缀并注入原始令牌，
// 不做吊销与解码检查。注销路由使用：对已吊销或已过期的令牌
// 重复注销仍然成功，保持注销幂等。
func BearerToken() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		raw := string(c.GetHeader("Authorization"))
		if !strings.HasPrefix(raw, bearerPrefix) {
			abortUnauthenticated(c, "missing or malformed authorization header")
			return
		}

		c.Set(RawTokenKey, strings.TrimPrefix(raw, bearerPrefix))
		c.Next(ctx)
	}
}

// Platform 校验 platform 头是否为已识别的平台。
// 与令牌门相互独立，路由可按需组合。
func Platform() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		platform := string(c.GetHeader("platform"))
		if !recognizedPlatforms[platform] {
			c.AbortWithStatusJSON(consts.StatusBadRequest, utils.H{
				"code":    consts.StatusBadRequest,
				"message": "missing or unrecognized platform header",
			})
			return
		}

		c.Set(PlatformKey, platform)
		c.Next(ctx)
	}
}

func abortUnauthenticated(c *app.RequestContext, message string) {
	c.AbortWithStatusJSON(consts.StatusUnauthorized, utils.H{
		"code":    consts.StatusUnauthorized,
		"message": message,
	})
}

// UserID 从 RequestContext 取出令牌门注入的用户 ID
func UserID(c *app.RequestContext) (string, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}

// RawToken 从 RequestContext 取出令牌门注入的原始令牌
func RawToken(c *app.RequestContext) (string, bool) {
	v, exists := c.Get(RawTokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}

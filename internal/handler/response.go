package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
)

// Response 统一响应结构。业务码放在包体里，HTTP 状态恒为 200，
// 与既有前端的解包约定保持一致；只有网关中间件直接以
// HTTP 状态码中断请求。
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK returns a successful response
func OK(c *app.RequestContext, message string, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    consts.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Created returns a response for newly created resources
func Created(c *app.RequestContext, message string, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    consts.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Fail maps a domain error onto the envelope.
// Internal causes never reach the response body; they are logged upstream.
func Fail(c *app.RequestContext, err error) {
	message := "an error occurred"
	if domainErr, ok := err.(*domain.DomainError); ok {
		message = domainErr.UserMessage()
	}

	var code int
	switch {
	case domain.IsValidation(err):
		code = consts.StatusBadRequest
	case domain.IsUnauthenticated(err):
		code = consts.StatusUnauthorized
	case domain.IsNotFound(err):
		code = consts.StatusNotFound
	case domain.IsConflict(err):
		code = consts.StatusBadRequest
	default:
		code = consts.StatusInternalServerError
		message = "internal server error"
	}

	resp := Response{
		Code:    code,
		Message: message,
	}
	if code == consts.StatusInternalServerError {
		resp.Error = "internal error"
	}
	c.JSON(consts.StatusOK, resp)
}

// BadRequest returns a validation failure without a domain error
func BadRequest(c *app.RequestContext, message string) {
	c.JSON(consts.StatusOK, Response{
		Code:    consts.StatusBadRequest,
		Message: message,
	})
}

package dto

import (
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// LoginRequest 用户登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// UpdateUserRequest 更新用户请求，缺省字段不修改
type UpdateUserRequest struct {
	Password *string `json:"password"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// UserResponse 用户公开投影，永远不包含密码摘要
type UserResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email,omitempty"`
	Avatar        string  `json:"avatar,omitempty"`
	Role          string  `json:"role"`
	Status        string  `json:"status"`
	LastLoginTime *string `json:"lastLoginTime,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUserResponse converts entity.User to UserResponse DTO
func ToUserResponse(user *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}

	if user.LastLoginTime != nil {
		lastLogin := user.LastLoginTime.Format(time.RFC3339)
		resp.LastLoginTime = &lastLogin
	}

	return resp
}

// ToUserResponses converts a slice of entity.User to DTOs
func ToUserResponses(users []*entity.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

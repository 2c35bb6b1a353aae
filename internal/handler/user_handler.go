package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/handler/dto"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/middleware"
)

// UserHandler handles authentication and user management requests
type UserHandler struct {
	usecase domain.UserUsecase
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(usecase domain.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Login handles POST /auth/login
func (h *UserHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	token, user, err := h.usecase.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.Warn("login failed", "username", req.Username, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Logout handles POST /auth/logout. The token gate has already stripped
// and validated the bearer token.
func (h *UserHandler) Logout(ctx context.Context, c *app.RequestContext) {
	token, ok := middleware.RawToken(c)
	if !ok {
		Fail(c, domain.NewUnauthenticatedError("missing token"))
		return
	}

	if err := h.usecase.Logout(ctx, token); err != nil {
		h.logger.Error("logout failed", "error", err)
		Fail(c, err)
		return
	}

	OK(c, "logout successful", nil)
}

// Create handles POST /users
func (h *UserHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	user, err := h.usecase.Create(ctx, domain.CreateUserParams{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		h.logger.Error("create user failed", "username", req.Username, "error", err)
		Fail(c, err)
		return
	}

	Created(c, "user created", dto.ToUserResponse(user))
}

// Get handles GET /users/:id
func (h *UserHandler) Get(ctx context.Context, c *app.RequestContext) {
	userID := c.Param("id")

	user, err := h.usecase.Get(ctx, userID)
	if err != nil {
		h.logger.Warn("get user failed", "user_id", userID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "user retrieved", dto.ToUserResponse(user))
}

// GetCurrent handles GET /users/current using the identity injected by
// the token gate.
func (h *UserHandler) GetCurrent(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, domain.NewUnauthenticatedError("missing identity"))
		return
	}

	user, err := h.usecase.Get(ctx, userID)
	if err != nil {
		h.logger.Warn("get current user failed", "user_id", userID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "user retrieved", dto.ToUserResponse(user))
}

// List handles GET /users
func (h *UserHandler) List(ctx context.Context, c *app.RequestContext) {
	users, err := h.usecase.List(ctx)
	if err != nil {
		h.logger.Error("list users failed", "error", err)
		Fail(c, err)
		return
	}

	OK(c, "users retrieved", dto.ToUserResponses(users))
}

// Update handles POST /users/:id/update
func (h *UserHandler) Update(ctx context.Context, c *app.RequestContext) {
	userID := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	params := domain.UpdateUserParams{
		Password: req.Password,
		Email:    req.Email,
		Avatar:   req.Avatar,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		params.Role = &role
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		params.Status = &status
	}

	user, err := h.usecase.Update(ctx, userID, params)
	if err != nil {
		h.logger.Warn("update user failed", "user_id", userID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "user updated", dto.ToUserResponse(user))
}

// Delete handles POST /users/:id/delete
func (h *UserHandler) Delete(ctx context.Context, c *app.RequestContext) {
	userID := c.Param("id")

	if err := h.usecase.Delete(ctx, userID); err != nil {
		h.logger.Warn("delete user failed", "user_id", userID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "user deleted", nil)
}

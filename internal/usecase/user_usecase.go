package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/auth"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/idgen"
)

// 用户不存在与密码错误返回同一条消息，避免泄露哪一步失败
const msgInvalidCredentials = "invalid username or password"

const msgAccountDisabled = "account is disabled"

// userUsecase 是 UserUsecase 接口的实现
type userUsecase struct {
	userRepo domain.UserRepository
	codec    *auth.Codec
	sessions *auth.RevocationSet
	idGen    *idgen.Generator
	logger   *slog.Logger
}

// NewUserUsecase 创建新的 UserUsecase 实例
func NewUserUsecase(
	userRepo domain.UserRepository,
	codec *auth.Codec,
	sessions *auth.RevocationSet,
	idGen *idgen.Generator,
	logger *slog.Logger,
) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		codec:    codec,
		sessions: sessions,
		idGen:    idGen,
		logger:   logger,
	}
}

// Login 用户登录：查找、校验密码、校验状态、落库登录时间后签发令牌
func (u *userUsecase) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.NewValidationError("username and password are required")
	}

	user, err := u.userRepo.GetByUsername(ctx, username, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", nil, domain.NewUnauthenticatedError(msgInvalidCredentials)
		}
		return "", nil, domain.NewInternalError("login failed", err)
	}

	if u.codec.HashPassword(password) != user.Password {
		return "", nil, domain.NewUnauthenticatedError(msgInvalidCredentials)
	}

	if user.Status != entity.StatusActive {
		return "", nil, domain.NewUnauthenticatedError(msgAccountDisabled)
	}

	// 登录时间必须先落库，写失败则本次登录失败，不为未持久化的
	// 登录时间签发令牌
	now := time.Now()
	user.LastLoginTime = &now
	user.UpdatedAt = now
	if err := u.userRepo.Update(ctx, user); err != nil {
		return "", nil, domain.NewInternalError("login failed", err)
	}

	token, err := u.codec.IssueToken(user.ID)
	if err != nil {
		return "", nil, domain.NewInternalError("login failed", err)
	}

	u.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return token, user, nil
}

// Logout 注销令牌，幂等
func (u *userUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.NewValidationError("token is required")
	}
	u.sessions.Invalidate(token)
	u.logger.Info("token revoked")
	return nil
}

// Create 创建用户
func (u *userUsecase) Create(ctx context.Context, params domain.CreateUserParams) (*entity.User, error) {
	if params.Username == "" || params.Password == "" {
		return nil, domain.NewValidationError("username and password are required")
	}

	role := params.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid role: %s", role))
	}

	// 用户名唯一性只看未删除用户，删除用户的用户名可以重用
	if _, err := u.userRepo.GetByUsername(ctx, params.Username, false); err == nil {
		return nil, domain.NewConflictError(fmt.Sprintf("username '%s' already exists", params.Username))
	} else if !domain.IsNotFound(err) {
		return nil, domain.NewInternalError("failed to create user", err)
	}

	if params.Email != "" {
		if _, err := u.userRepo.GetByEmail(ctx, params.Email, false); err == nil {
			return nil, domain.NewConflictError(fmt.Sprintf("email '%s' already registered", params.Email))
		} else if !domain.IsNotFound(err) {
			return nil, domain.NewInternalError("failed to create user", err)
		}
	}

	now := time.Now()
	user := &entity.User{
		ID:        u.idGen.NextID(),
		Username:  params.Username,
		Password:  u.codec.HashPassword(params.Password),
		Email:     params.Email,
		Avatar:    params.Avatar,
		Role:      role,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to create user", err)
	}

	u.logger.Info("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Get 获取用户信息，不含已删除用户
func (u *userUsecase) Get(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user id is required")
	}

	user, err := u.userRepo.GetByID(ctx, userID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to get user", err)
	}
	return user, nil
}

// List 用户列表，不含已删除用户
func (u *userUsecase) List(ctx context.Context) ([]*entity.User, error) {
	users, err := u.userRepo.List(ctx, false)
	if err != nil {
		return nil, domain.NewInternalError("failed to list users", err)
	}
	return users, nil
}

// Update 更新用户，密码字段重新计算摘要后才落库
func (u *userUsecase) Update(ctx context.Context, userID string, params domain.UpdateUserParams) (*entity.User, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user id is required")
	}

	user, err := u.userRepo.GetByID(ctx, userID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to update user", err)
	}

	if params.Password != nil {
		if *params.Password == "" {
			return nil, domain.NewValidationError("password must not be empty")
		}
		// 明文绝不落库
		user.Password = u.codec.HashPassword(*params.Password)
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Avatar != nil {
		user.Avatar = *params.Avatar
	}
	if params.Role != nil {
		if !params.Role.IsValid() {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid role: %s", *params.Role))
		}
		user.Role = *params.Role
	}
	if params.Status != nil {
		if !params.Status.IsValid() {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid status: %s", *params.Status))
		}
		user.Status = *params.Status
	}

	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to update user", err)
	}

	u.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

// Delete 软删除用户，重复删除返回 NotFound
func (u *userUsecase) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.NewValidationError("user id is required")
	}

	user, err := u.userRepo.GetByID(ctx, userID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.NewInternalError("failed to delete user", err)
	}

	user.IsDeleted = true
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return domain.NewInternalError("failed to delete user", err)
	}

	u.logger.Info("user deleted", "user_id", userID)
	return nil
}

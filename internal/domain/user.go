package domain

import (
	"context"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// ============ Repository 接口 ============

// UserRepository 用户数据访问接口。
// 所有读方法显式携带 includeDeleted，软删除过滤策略由调用方声明而非隐式约定。
type UserRepository interface {
	// Create 创建用户
	Create(ctx context.Context, user *entity.User) error

	// GetByID 根据 ID 查找
	GetByID(ctx context.Context, userID string, includeDeleted bool) (*entity.User, error)

	// GetByUsername 根据用户名查找（用于登录与重名检查）
	GetByUsername(ctx context.Context, username string, includeDeleted bool) (*entity.User, error)

	// GetByEmail 根据邮箱查找
	GetByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error)

	// List 列表查询
	List(ctx context.Context, includeDeleted bool) ([]*entity.User, error)

	// Update 全量更新用户记录
	Update(ctx context.Context, user *entity.User) error
}

// ============ Usecase 接口 ============

// CreateUserParams 创建用户入参
type CreateUserParams struct {
	Username string
	Password string
	Email    string
	Avatar   string
	Role     entity.Role
}

// UpdateUserParams 更新用户入参，nil 字段表示不修改
type UpdateUserParams struct {
	Password *string
	Email    *string
	Avatar   *string
	Role     *entity.Role
	Status   *entity.Status
}

// UserUsecase 用户业务逻辑接口
type UserUsecase interface {
	// Login 用户登录，成功返回令牌与用户信息
	Login(ctx context.Context, username, password string) (string, *entity.User, error)

	// Logout 注销令牌（幂等）
	Logout(ctx context.Context, token string) error

	// Create 创建用户
	Create(ctx context.Context, params CreateUserParams) (*entity.User, error)

	// Get 获取用户信息
	Get(ctx context.Context, userID string) (*entity.User, error)

	// List 用户列表
	List(ctx context.Context) ([]*entity.User, error)

	// Update 更新用户
	Update(ctx context.Context, userID string, params UpdateUserParams) (*entity.User, error)

	// Delete 软删除用户
	Delete(ctx context.Context, userID string) error
}

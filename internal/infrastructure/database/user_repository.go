package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// userRepository 是 UserRepository 接口的 GORM 实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建新的 UserRepository 实例
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) scope(ctx context.Context, includeDeleted bool) *gorm.DB {
	q := r.db.WithContext(ctx)
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	return q
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(toUserModel(user)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError(fmt.Sprintf("user '%s' already exists", user.ID))
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID 根据 ID 查找用户
func (r *userRepository) GetByID(ctx context.Context, userID string, includeDeleted bool) (*entity.User, error) {
	var m userModel
	err := r.scope(ctx, includeDeleted).Where("id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", userID)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toUserEntity(&m), nil
}

// GetByUsername 根据用户名查找用户
func (r *userRepository) GetByUsername(ctx context.Context, username string, includeDeleted bool) (*entity.User, error) {
	var m userModel
	err := r.scope(ctx, includeDeleted).Where("username = ?", username).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", username)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return toUserEntity(&m), nil
}

// GetByEmail 根据邮箱查找用户
func (r *userRepository) GetByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error) {
	var m userModel
	err := r.scope(ctx, includeDeleted).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toUserEntity(&m), nil
}

// List 用户列表
func (r *userRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.User, error) {
	var models []userModel
	if err := r.scope(ctx, includeDeleted).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*entity.User, len(models))
	for i := range models {
		users[i] = toUserEntity(&models[i])
	}
	return users, nil
}

// Update 全量更新用户记录
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m := toUserModel(user)
	result := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", m.ID).
		Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("user", user.ID)
	}
	return nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// apiRepository 是 ApiRepository 接口的 GORM 实现
type apiRepository struct {
	db *gorm.DB
}

// NewApiRepository 创建新的 ApiRepository 实例
func NewApiRepository(db *gorm.DB) domain.ApiRepository {
	return &apiRepository{db: db}
}

func (r *apiRepository) scope(ctx context.Context, includeDeleted bool) *gorm.DB {
	q := r.db.WithContext(ctx)
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	return q
}

// Create 创建接口
func (r *apiRepository) Create(ctx context.Context, api *entity.Api) error {
	if err := r.db.WithContext(ctx).Create(toApiModel(api)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError(fmt.Sprintf("api '%s' already exists", api.ID))
		}
		return fmt.Errorf("failed to create api: %w", err)
	}
	return nil
}

// GetByID 根据 ID 查找接口
func (r *apiRepository) GetByID(ctx context.Context, apiID string, includeDeleted bool) (*entity.Api, error) {
	var m apiModel
	err := r.scope(ctx, includeDeleted).Where("id = ?", apiID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("api", apiID)
		}
		return nil, fmt.Errorf("failed to get api: %w", err)
	}
	return toApiEntity(&m), nil
}

// List 接口列表，按创建时间倒序
func (r *apiRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.Api, error) {
	var models []apiModel
	if err := r.scope(ctx, includeDeleted).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list apis: %w", err)
	}
	return toApiEntities(models), nil
}

// ListByProject 项目下的接口列表，按创建时间倒序
func (r *apiRepository) ListByProject(ctx context.Context, projectID string, includeDeleted bool) ([]*entity.Api, error) {
	var models []apiModel
	err := r.scope(ctx, includeDeleted).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list apis by project: %w", err)
	}
	return toApiEntities(models), nil
}

// Update 全量更新接口记录
func (r *apiRepository) Update(ctx context.Context, api *entity.Api) error {
	m := toApiModel(api)
	result := r.db.WithContext(ctx).Model(&apiModel{}).Where("id = ?", m.ID).
		Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return fmt.Errorf("failed to update api: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("api", api.ID)
	}
	return nil
}

// SoftDeleteByProject 批量软删除项目下所有未删除的接口
func (r *apiRepository) SoftDeleteByProject(ctx context.Context, projectID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&apiModel{}).
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to soft delete apis by project: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func toApiEntities(models []apiModel) []*entity.Api {
	apis := make([]*entity.Api, len(models))
	for i := range models {
		apis[i] = toApiEntity(&models[i])
	}
	return apis
}

package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// projectRepository 是 ProjectRepository 接口的 GORM 实现
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建新的 ProjectRepository 实例
func NewProjectRepository(db *gorm.DB) domain.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) scope(ctx context.Context, includeDeleted bool) *gorm.DB {
	q := r.db.WithContext(ctx)
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	return q
}

// Create 创建项目。主键唯一索引是并发创建竞态下的最终防线，
// 冲突在这里翻译为领域 Conflict 错误。
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	if err := r.db.WithContext(ctx).Create(toProjectModel(project)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError(fmt.Sprintf("project '%s' already exists", project.ID))
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetByID 根据 ID 查找项目
func (r *projectRepository) GetByID(ctx context.Context, projectID string, includeDeleted bool) (*entity.Project, error) {
	var m projectModel
	err := r.scope(ctx, includeDeleted).Where("id = ?", projectID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("project", projectID)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return toProjectEntity(&m), nil
}

// List 项目列表，按创建时间倒序
func (r *projectRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.Project, error) {
	var models []projectModel
	if err := r.scope(ctx, includeDeleted).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*entity.Project, len(models))
	for i := range models {
		projects[i] = toProjectEntity(&models[i])
	}
	return projects, nil
}

// Update 全量更新项目记录
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	m := toProjectModel(project)
	result := r.db.WithContext(ctx).Model(&projectModel{}).Where("id = ?", m.ID).
		Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("project", project.ID)
	}
	return nil
}

package domain

import (
	"context"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// ProjectRepository 项目数据访问接口
type ProjectRepository interface {
	// Create 创建项目
	Create(ctx context.Context, project *entity.Project) error

	// GetByID 根据 ID 查找
	GetByID(ctx context.Context, projectID string, includeDeleted bool) (*entity.Project, error)

	// List 列表查询，按创建时间倒序
	List(ctx context.Context, includeDeleted bool) ([]*entity.Project, error)

	// Update 全量更新项目记录
	Update(ctx context.Context, project *entity.Project) error
}

// ProjectUsecase 项目业务逻辑接口
type ProjectUsecase interface {
	// Create 创建项目，ID 由调用方提供且不得与任何历史项目重复
	Create(ctx context.Context, id, name string) (*entity.Project, error)

	// Get 获取项目详情
	Get(ctx context.Context, projectID string) (*entity.Project, error)

	// List 项目列表（不含已删除）
	List(ctx context.Context) ([]*entity.Project, error)

	// Update 更新项目
	Update(ctx context.Context, projectID, name string) (*entity.Project, error)

	// Delete 软删除项目（不级联删除项目下的接口）
	Delete(ctx context.Context, projectID string) error
}

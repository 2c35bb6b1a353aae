package domain

import (
	"context"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// ApiRepository 接口数据访问接口
type ApiRepository interface {
	// Create 创建接口
	Create(ctx context.Context, api *entity.Api) error

	// GetByID 根据 ID 查找
	GetByID(ctx context.Context, apiID string, includeDeleted bool) (*entity.Api, error)

	// List 列表查询，按创建时间倒序
	List(ctx context.Context, includeDeleted bool) ([]*entity.Api, error)

	// ListByProject 查询项目下的接口，按创建时间倒序
	ListByProject(ctx context.Context, projectID string, includeDeleted bool) ([]*entity.Api, error)

	// Update 全量更新接口记录
	Update(ctx context.Context, api *entity.Api) error

	// SoftDeleteByProject 批量软删除项目下所有未删除的接口，返回影响条数
	SoftDeleteByProject(ctx context.Context, projectID string) (int64, error)
}

// CreateApiParams 创建接口入参
type CreateApiParams struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Method      entity.Method
	URL         string
	Param       string
	Response    string
}

// UpdateApiParams 更新接口入参
type UpdateApiParams struct {
	Name        string
	Description string
	Method      entity.Method
	URL         string
	Param       string
	Response    string
}

// ApiUsecase 接口业务逻辑接口
type ApiUsecase interface {
	// Create 创建接口，所属项目必须存在且未删除
	Create(ctx context.Context, params CreateApiParams) (*entity.Api, error)

	// Get 获取接口详情
	Get(ctx context.Context, apiID string) (*entity.Api, error)

	// List 接口列表（不含已删除）
	List(ctx context.Context) ([]*entity.Api, error)

	// ListByProject 项目下的接口列表，项目必须存在且未删除
	ListByProject(ctx context.Context, projectID string) ([]*entity.Api, error)

	// Update 更新接口
	Update(ctx context.Context, apiID string, params UpdateApiParams) (*entity.Api, error)

	// Delete 软删除接口
	Delete(ctx context.Context, apiID string) error

	// DeleteByProject 批量软删除项目下的接口，返回影响条数。
	// 项目删除不会自动触发，由调用方显式调用。
	DeleteByProject(ctx context.Context, projectID string) (int64, error)
}

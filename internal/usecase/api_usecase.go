package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// apiUsecase 是 ApiUsecase 接口的实现
type apiUsecase struct {
	apiRepo     domain.ApiRepository
	projectRepo domain.ProjectRepository
	logger      *slog.Logger
}

// NewApiUsecase 创建新的 ApiUsecase 实例
func NewApiUsecase(
	apiRepo domain.ApiRepository,
	projectRepo domain.ProjectRepository,
	logger *slog.Logger,
) domain.ApiUsecase {
	return &apiUsecase{
		apiRepo:     apiRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create 创建接口。所属项目必须存在且未删除；
// 接口 ID 唯一性检查包含已删除接口。
func (a *apiUsecase) Create(ctx context.Context, params domain.CreateApiParams) (*entity.Api, error) {
	if params.ID == "" || params.ProjectID == "" || params.Name == "" ||
		params.Method == "" || params.URL == "" {
		return nil, domain.NewValidationError("api id, project id, name, method and url are required")
	}
	if !params.Method.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("method must be GET or POST, got %s", params.Method))
	}

	if _, err := a.projectRepo.GetByID(ctx, params.ProjectID, false); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to create api", err)
	}

	if _, err := a.apiRepo.GetByID(ctx, params.ID, true); err == nil {
		return nil, domain.NewConflictError(fmt.Sprintf("api id '%s' already exists", params.ID))
	} else if !domain.IsNotFound(err) {
		return nil, domain.NewInternalError("failed to create api", err)
	}

	now := time.Now()
	api := &entity.Api{
		ID:          params.ID,
		ProjectID:   params.ProjectID,
		Name:        params.Name,
		Description: params.Description,
		Method:      params.Method,
		URL:         params.URL,
		Param:       params.Param,
		Response:    params.Response,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := a.apiRepo.Create(ctx, api); err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to create api", err)
	}

	a.logger.Info("api created", "api_id", api.ID, "project_id", api.ProjectID)
	return api, nil
}

// Get 获取接口详情，不含已删除接口
func (a *apiUsecase) Get(ctx context.Context, apiID string) (*entity.Api, error) {
	if apiID == "" {
		return nil, domain.NewValidationError("api id is required")
	}

	api, err := a.apiRepo.GetByID(ctx, apiID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to get api", err)
	}
	return api, nil
}

// List 接口列表，不含已删除接口，按创建时间倒序
func (a *apiUsecase) List(ctx context.Context) ([]*entity.Api, error) {
	apis, err := a.apiRepo.List(ctx, false)
	if err != nil {
		return nil, domain.NewInternalError("failed to list apis", err)
	}
	return apis, nil
}

// ListByProject 项目下的接口列表，项目必须存在且未删除
func (a *apiUsecase) ListByProject(ctx context.Context, projectID string) ([]*entity.Api, error) {
	if projectID == "" {
		return nil, domain.NewValidationError("project id is required")
	}

	if _, err := a.projectRepo.GetByID(ctx, projectID, false); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to list apis", err)
	}

	apis, err := a.apiRepo.ListByProject(ctx, projectID, false)
	if err != nil {
		return nil, domain.NewInternalError("failed to list apis", err)
	}
	return apis, nil
}

// Update 更新接口，必填字段与方法枚举重新校验
func (a *apiUsecase) Update(ctx context.Context, apiID string, params domain.UpdateApiParams) (*entity.Api, error) {
	if apiID == "" {
		return nil, domain.NewValidationError("api id is required")
	}
	if params.Name == "" || params.Method == "" || params.URL == "" {
		return nil, domain.NewValidationError("api name, method and url are required")
	}
	if !params.Method.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("method must be GET or POST, got %s", params.Method))
	}

	api, err := a.apiRepo.GetByID(ctx, apiID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to update api", err)
	}

	api.Name = params.Name
	api.Description = params.Description
	api.Method = params.Method
	api.URL = params.URL
	api.Param = params.Param
	api.Response = params.Response
	api.UpdatedAt = time.Now()

	if err := a.apiRepo.Update(ctx, api); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to update api", err)
	}

	a.logger.Info("api updated", "api_id", apiID)
	return api, nil
}

// Delete 软删除接口，重复删除返回 NotFound
func (a *apiUsecase) Delete(ctx context.Context, apiID string) error {
	if apiID == "" {
		return domain.NewValidationError("api id is required")
	}

	api, err := a.apiRepo.GetByID(ctx, apiID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.NewInternalError("failed to delete api", err)
	}

	api.IsDeleted = true
	api.UpdatedAt = time.Now()
	if err := a.apiRepo.Update(ctx, api); err != nil {
		return domain.NewInternalError("failed to delete api", err)
	}

	a.logger.Info("api deleted", "api_id", apiID)
	return nil
}

// DeleteByProject 批量软删除项目下的接口，返回影响条数。
// 项目删除不自动级联，这里是唯一的批量入口。
func (a *apiUsecase) DeleteByProject(ctx context.Context, projectID string) (int64, error) {
	if projectID == "" {
		return 0, domain.NewValidationError("project id is required")
	}

	count, err := a.apiRepo.SoftDeleteByProject(ctx, projectID)
	if err != nil {
		return 0, domain.NewInternalError("failed to delete apis by project", err)
	}

	a.logger.Info("apis deleted by project", "project_id", projectID, "count", count)
	return count, nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// projectUsecase 是 ProjectUsecase 接口的实现
type projectUsecase struct {
	projectRepo domain.ProjectRepository
	logger      *slog.Logger
}

// NewProjectUsecase 创建新的 ProjectUsecase 实例
func NewProjectUsecase(projectRepo domain.ProjectRepository, logger *slog.Logger) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create 创建项目。ID 唯一性检查包含已删除项目：
// 删除过的项目 ID 永久不可复用。
func (p *projectUsecase) Create(ctx context.Context, id, name string) (*entity.Project, error) {
	if id == "" || name == "" {
		return nil, domain.NewValidationError("project id and name are required")
	}

	if _, err := p.projectRepo.GetByID(ctx, id, true); err == nil {
		return nil, domain.NewConflictError(fmt.Sprintf("project id '%s' already exists", id))
	} else if !domain.IsNotFound(err) {
		return nil, domain.NewInternalError("failed to create project", err)
	}

	now := time.Now()
	project := &entity.Project{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.projectRepo.Create(ctx, project); err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to create project", err)
	}

	p.logger.Info("project created", "project_id", id, "name", name)
	return project, nil
}

// Get 获取项目详情，不含已删除项目
func (p *projectUsecase) Get(ctx context.Context, projectID string) (*entity.Project, error) {
	if projectID == "" {
		return nil, domain.NewValidationError("project id is required")
	}

	project, err := p.projectRepo.GetByID(ctx, projectID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to get project", err)
	}
	return project, nil
}

// List 项目列表，不含已删除项目，按创建时间倒序
func (p *projectUsecase) List(ctx context.Context) ([]*entity.Project, error) {
	projects, err := p.projectRepo.List(ctx, false)
	if err != nil {
		return nil, domain.NewInternalError("failed to list projects", err)
	}
	return projects, nil
}

// Update 更新项目名称
func (p *projectUsecase) Update(ctx context.Context, projectID, name string) (*entity.Project, error) {
	if projectID == "" {
		return nil, domain.NewValidationError("project id is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("project name is required")
	}

	project, err := p.projectRepo.GetByID(ctx, projectID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to update project", err)
	}

	project.Name = name
	project.UpdatedAt = time.Now()
	if err := p.projectRepo.Update(ctx, project); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to update project", err)
	}

	p.logger.Info("project updated", "project_id", projectID)
	return project, nil
}

// Delete 软删除项目。项目下的接口不会级联删除，
// 需要时由调用方显式触发批量删除。
func (p *projectUsecase) Delete(ctx context.Context, projectID string) error {
	if projectID == "" {
		return domain.NewValidationError("project id is required")
	}

	project, err := p.projectRepo.GetByID(ctx, projectID, false)
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.NewInternalError("failed to delete project", err)
	}

	project.IsDeleted = true
	project.UpdatedAt = time.Now()
	if err := p.projectRepo.Update(ctx, project); err != nil {
		return domain.NewInternalError("failed to delete project", err)
	}

	p.logger.Info("project deleted", "project_id", projectID)
	return nil
}

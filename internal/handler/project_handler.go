package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/handler/dto"
)

// ProjectHandler handles project management requests
type ProjectHandler struct {
	usecase domain.ProjectUsecase
	logger  *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(usecase domain.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Create handles POST /projects
func (h *ProjectHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	project, err := h.usecase.Create(ctx, req.ID, req.Name)
	if err != nil {
		h.logger.Error("create project failed", "project_id", req.ID, "error", err)
		Fail(c, err)
		return
	}

	Created(c, "project created", dto.ToProjectResponse(project))
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(ctx context.Context, c *app.RequestContext) {
	projectID := c.Param("id")

	project, err := h.usecase.Get(ctx, projectID)
	if err != nil {
		h.logger.Warn("get project failed", "project_id", projectID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "project retrieved", dto.ToProjectResponse(project))
}

// List handles GET /projects
func (h *ProjectHandler) List(ctx context.Context, c *app.RequestContext) {
	projects, err := h.usecase.List(ctx)
	if err != nil {
		h.logger.Error("list projects failed", "error", err)
		Fail(c, err)
		return
	}

	OK(c, "projects retrieved", dto.ToProjectResponses(projects))
}

// Update handles POST /projects/:id/update
func (h *ProjectHandler) Update(ctx context.Context, c *app.RequestContext) {
	projectID := c.Param("id")

	var req dto.UpdateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	project, err := h.usecase.Update(ctx, projectID, req.Name)
	if err != nil {
		h.logger.Warn("update project failed", "project_id", projectID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "project updated", dto.ToProjectResponse(project))
}

// Delete handles POST /projects/:id/delete
func (h *ProjectHandler) Delete(ctx context.Context, c *app.RequestContext) {
	projectID := c.Param("id")

	if err := h.usecase.Delete(ctx, projectID); err != nil {
		h.logger.Warn("delete project failed", "project_id", projectID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "project deleted", nil)
}

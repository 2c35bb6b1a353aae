package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/handler/dto"
)

// ApiHandler handles API definition management requests
type ApiHandler struct {
	usecase domain.ApiUsecase
	logger  *slog.Logger
}

// NewApiHandler creates a new API handler
func NewApiHandler(usecase domain.ApiUsecase, logger *slog.Logger) *ApiHandler {
	return &ApiHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Create handles POST /apis
func (h *ApiHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateApiRequest
	if err := c.BindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	api, err := h.usecase.Create(ctx, domain.CreateApiParams{
		ID:          req.ID,
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		Method:      entity.Method(req.Method),
		URL:         req.URL,
		Param:       req.Param,
		Response:    req.Response,
	})
	if err != nil {
		h.logger.Error("create api failed", "api_id", req.ID, "error", err)
		Fail(c, err)
		return
	}

	Created(c, "api created", dto.ToApiResponse(api))
}

// Get handles GET /apis/:id
func (h *ApiHandler) Get(ctx context.Context, c *app.RequestContext) {
	apiID := c.Param("id")

	api, err := h.usecase.Get(ctx, apiID)
	if err != nil {
		h.logger.Warn("get api failed", "api_id", apiID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "api retrieved", dto.ToApiResponse(api))
}

// List handles GET /apis
func (h *ApiHandler) List(ctx context.Context, c *app.RequestContext) {
	apis, err := h.usecase.List(ctx)
	if err != nil {
		h.logger.Error("list apis failed", "error", err)
		Fail(c, err)
		return
	}

	OK(c, "apis retrieved", dto.ToApiResponses(apis))
}

// ListByProject handles GET /projects/:id/apis
func (h *ApiHandler) ListByProject(ctx context.Context, c *app.RequestContext) {
	projectID := c.Param("id")

	apis, err := h.usecase.ListByProject(ctx, projectID)
	if err != nil {
		h.logger.Warn("list apis by project failed", "project_id", projectID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "apis retrieved", dto.ToApiResponses(apis))
}

// Update handles POST /apis/:id/update
func (h *ApiHandler) Update(ctx context.Context, c *app.RequestContext) {
	apiID := c.Param("id")

	var req dto.UpdateApiRequest
	if err := c.BindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	api, err := h.usecase.Update(ctx, apiID, domain.UpdateApiParams{
		Name:        req.Name,
		Description: req.Description,
		Method:      entity.Method(req.Method),
		URL:         req.URL,
		Param:       req.Param,
		Response:    req.Response,
	})
	if err != nil {
		h.logger.Warn("update api failed", "api_id", apiID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "api updated", dto.ToApiResponse(api))
}

// Delete handles POST /apis/:id/delete
func (h *ApiHandler) Delete(ctx context.Context, c *app.RequestContext) {
	apiID := c.Param("id")

	if err := h.usecase.Delete(ctx, apiID); err != nil {
		h.logger.Warn("delete api failed", "api_id", apiID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "api deleted", nil)
}

// DeleteByProject handles POST /projects/:id/apis/delete
func (h *ApiHandler) DeleteByProject(ctx context.Context, c *app.RequestContext) {
	projectID := c.Param("id")

	count, err := h.usecase.DeleteByProject(ctx, projectID)
	if err != nil {
		h.logger.Warn("delete apis by project failed", "project_id", projectID, "error", err)
		Fail(c, err)
		return
	}

	OK(c, "apis deleted", dto.DeletedCountResponse{Deleted: count})
}

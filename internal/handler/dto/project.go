package dto

import (
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// CreateProjectRequest 创建项目请求，ID 由调用方提供
type CreateProjectRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UpdateProjectRequest 更新项目请求
type UpdateProjectRequest struct {
	Name string `json:"name"`
}

// ProjectResponse 项目响应
type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToProjectResponse converts entity.Project to ProjectResponse DTO
func ToProjectResponse(project *entity.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}
}

// ToProjectResponses converts a slice of entity.Project to DTOs
func ToProjectResponses(projects []*entity.Project) []*ProjectResponse {
	responses := make([]*ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return responses
}

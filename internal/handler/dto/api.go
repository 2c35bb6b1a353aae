package dto

import (
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// CreateApiRequest 创建接口请求
type CreateApiRequest struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Method      string `json:"method"`
	URL         string `json:"url"`
	Param       string `json:"param"`
	Response    string `json:"response"`
}

// UpdateApiRequest 更新接口请求
type UpdateApiRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Method      string `json:"method"`
	URL         string `json:"url"`
	Param       string `json:"param"`
	Response    string `json:"response"`
}

// ApiResponse 接口响应
type ApiResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Method      string `json:"method"`
	URL         string `json:"url"`
	Param       string `json:"param,omitempty"`
	Response    string `json:"response,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// DeletedCountResponse 批量删除响应
type DeletedCountResponse struct {
	Deleted int64 `json:"deleted"`
}

// ToApiResponse converts entity.Api to ApiResponse DTO
func ToApiResponse(api *entity.Api) *ApiResponse {
	return &ApiResponse{
		ID:          api.ID,
		ProjectID:   api.ProjectID,
		Name:        api.Name,
		Description: api.Description,
		Method:      string(api.Method),
		URL:         api.URL,
		Param:       api.Param,
		Response:    api.Response,
		CreatedAt:   api.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   api.UpdatedAt.Format(time.RFC3339),
	}
}

// ToApiResponses converts a slice of entity.Api to DTOs
func ToApiResponses(apis []*entity.Api) []*ApiResponse {
	responses := make([]*ApiResponse, len(apis))
	for i, api := range apis {
		responses[i] = ToApiResponse(api)
	}
	return responses
}

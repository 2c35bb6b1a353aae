package usecase

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// 内存版 ApiRepository
type fakeApiRepository struct {
	apis map[string]*entity.Api
}

func newFakeApiRepository() *fakeApiRepository {
	return &fakeApiRepository{apis: make(map[string]*entity.Api)}
}

func (r *fakeApiRepository) Create(ctx context.Context, api *entity.Api) error {
	if _, ok := r.apis[api.ID]; ok {
		return domain.NewConflictError("duplicate id")
	}
	clone := *api
	r.apis[api.ID] = &clone
	return nil
}

func (r *fakeApiRepository) GetByID(ctx context.Context, apiID string, includeDeleted bool) (*entity.Api, error) {
	api, ok := r.apis[apiID]
	if !ok || (!includeDeleted && api.IsDeleted) {
		return nil, domain.NewNotFoundError("api", apiID)
	}
	clone := *api
	return &clone, nil
}

func (r *fakeApiRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.Api, error) {
	var out []*entity.Api
	for _, api := range r.apis {
		if includeDeleted || !api.IsDeleted {
			clone := *api
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeApiRepository) ListByProject(ctx context.Context, projectID string, includeDeleted bool) ([]*entity.Api, error) {
	var out []*entity.Api
	for _, api := range r.apis {
		if api.ProjectID == projectID && (includeDeleted || !api.IsDeleted) {
			clone := *api
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeApiRepository) Update(ctx context.Context, api *entity.Api) error {
	if _, ok := r.apis[api.ID]; !ok {
		return domain.NewNotFoundError("api", api.ID)
	}
	clone := *api
	r.apis[api.ID] = &clone
	return nil
}

func (r *fakeApiRepository) SoftDeleteByProject(ctx context.Context, projectID string) (int64, error) {
	var count int64
	for _, api := range r.apis {
		if api.ProjectID == projectID && !api.IsDeleted {
			api.IsDeleted = true
			api.UpdatedAt = time.Now()
			count++
		}
	}
	return count, nil
}

func newTestApiUsecase(apiRepo *fakeApiRepository, projectRepo *fakeProjectRepository) domain.ApiUsecase {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewApiUsecase(apiRepo, projectRepo, logger)
}

func validApiParams(id, projectID string) domain.CreateApiParams {
	return domain.CreateApiParams{
		ID:        id,
		ProjectID: projectID,
		Name:      "list orders",
		Method:    entity.MethodGet,
		URL:       "/orders",
	}
}

func TestCreateApi(t *testing.T) {
	tests := []struct {
		name        string
		params      domain.CreateApiParams
		setup       func(*fakeApiRepository, *fakeProjectRepository)
		wantErr     bool
		errContains string
	}{
		{
			name:   "成功创建",
			params: validApiParams("api-1", "shop"),
			setup: func(a *fakeApiRepository, p *fakeProjectRepository) {
				seedProject(p, "shop", "Shop", false)
			},
		},
		{
			name:   "项目不存在",
			params: validApiParams("api-1", "ghost"),
			setup: func(a *fakeApiRepository, p *fakeProjectRepository) {
			},
			wantErr:     true,
			errContains: "not found",
		},
		{
			name:   "项目已删除",
			params: validApiParams("api-1", "shop"),
			setup: func(a *fakeApiRepository, p *fakeProjectRepository) {
				seedProject(p, "shop", "Shop", true)
			},
			wantErr:     true,
			errContains: "not found",
		},
		{
			name: "方法不合法",
			params: domain.CreateApiParams{
				ID: "api-1", ProjectID: "shop", Name: "x", Method: "PATCH", URL: "/x",
			},
			setup: func(a *fakeApiRepository, p *fakeProjectRepository) {
				seedProject(p, "shop", "Shop", false)
			},
			wantErr:     true,
			errContains: "GET or POST",
		},
		{
			name:   "ID 重复",
			params: validApiParams("api-1", "shop"),
			setup: func(a *fakeApiRepository, p *fakeProjectRepository) {
				seedProject(p, "shop", "Shop", false)
				a.apis["api-1"] = &entity.Api{ID: "api-1", ProjectID: "shop"}
			},
			wantErr:     true,
			errContains: "already exists",
		},
		{
			name:   "已删除接口的 ID 不可复用",
			params: validApiParams("api-1", "shop"),
			setup: func(a *fakeApiRepository, p *fakeProjectRepository) {
				seedProject(p, "shop", "Shop", false)
				a.apis["api-1"] = &entity.Api{ID: "api-1", ProjectID: "shop", IsDeleted: true}
			},
			wantErr:     true,
			errContains: "already exists",
		},
		{
			name: "缺少必填字段",
			params: domain.CreateApiParams{
				ID: "api-1", ProjectID: "shop", Method: entity.MethodGet,
			},
			setup: func(a *fakeApiRepository, p *fakeProjectRepository) {
				seedProject(p, "shop", "Shop", false)
			},
			wantErr:     true,
			errContains: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiRepo := newFakeApiRepository()
			projectRepo := newFakeProjectRepository()
			tt.setup(apiRepo, projectRepo)
			uc := newTestApiUsecase(apiRepo, projectRepo)

			api, err := uc.Create(context.Background(), tt.params)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if api.ID != tt.params.ID || api.ProjectID != tt.params.ProjectID {
				t.Errorf("unexpected api: %+v", api)
			}
		})
	}
}

func TestListApisByProject(t *testing.T) {
	apiRepo := newFakeApiRepository()
	projectRepo := newFakeProjectRepository()
	seedProject(projectRepo, "shop", "Shop", false)
	uc := newTestApiUsecase(apiRepo, projectRepo)
	ctx := context.Background()

	for _, id := range []string{"api-1", "api-2"} {
		if _, err := uc.Create(ctx, validApiParams(id, "shop")); err != nil {
			t.Fatalf("create %s failed: %v", id, err)
		}
	}

	apis, err := uc.ListByProject(ctx, "shop")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(apis) != 2 {
		t.Errorf("expected 2 apis, got %d", len(apis))
	}

	// 已删除的接口不出现在列表里
	if err := uc.Delete(ctx, "api-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	apis, err = uc.ListByProject(ctx, "shop")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(apis) != 1 || apis[0].ID != "api-2" {
		t.Errorf("expected only api-2, got %+v", apis)
	}

	// 项目不存在时报错
	if _, err := uc.ListByProject(ctx, "ghost"); !domain.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpdateApi(t *testing.T) {
	apiRepo := newFakeApiRepository()
	projectRepo := newFakeProjectRepository()
	seedProject(projectRepo, "shop", "Shop", false)
	uc := newTestApiUsecase(apiRepo, projectRepo)
	ctx := context.Background()

	if _, err := uc.Create(ctx, validApiParams("api-1", "shop")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	api, err := uc.Update(ctx, "api-1", domain.UpdateApiParams{
		Name:   "create order",
		Method: entity.MethodPost,
		URL:    "/orders",
		Param:  `{"sku":"string"}`,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if api.Method != entity.MethodPost || api.Name != "create order" {
		t.Errorf("unexpected api after update: %+v", api)
	}

	// 非法方法被拒绝
	_, err = uc.Update(ctx, "api-1", domain.UpdateApiParams{
		Name: "x", Method: "DELETE", URL: "/x",
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDeleteApisByProject(t *testing.T) {
	apiRepo := newFakeApiRepository()
	projectRepo := newFakeProjectRepository()
	seedProject(projectRepo, "shop", "Shop", false)
	seedProject(projectRepo, "blog", "Blog", false)
	uc := newTestApiUsecase(apiRepo, projectRepo)
	ctx := context.Background()

	for _, id := range []string{"api-1", "api-2", "api-3"} {
		if _, err := uc.Create(ctx, validApiParams(id, "shop")); err != nil {
			t.Fatalf("create %s failed: %v", id, err)
		}
	}
	if _, err := uc.Create(ctx, validApiParams("api-4", "blog")); err != nil {
		t.Fatalf("create api-4 failed: %v", err)
	}

	// 先删掉一个，批量删除只统计剩余未删除的
	if err := uc.Delete(ctx, "api-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	count, err := uc.DeleteByProject(ctx, "shop")
	if err != nil {
		t.Fatalf("bulk delete failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 deleted, got %d", count)
	}

	// 其他项目的接口不受影响
	apis, err := uc.ListByProject(ctx, "blog")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(apis) != 1 {
		t.Errorf("blog apis should be untouched, got %d", len(apis))
	}

	// 再次批量删除影响条数为 0
	count, err = uc.DeleteByProject(ctx, "shop")
	if err != nil {
		t.Fatalf("bulk delete failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 deleted on repeat, got %d", count)
	}
}

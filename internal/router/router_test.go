package router

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/auth"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/handler"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/idgen"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/infrastructure/database"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/logview"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/usecase"
)

type envelope struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// 全栈测试装置:内存数据库加真实路由
func newTestServer(t *testing.T) (*server.Hertz, domain.UserUsecase) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	codec := auth.NewCodec("test-secret-test-secret-test-secret!", "test-salt", time.Hour)
	sessions := auth.NewRevocationSet()
	idGen, err := idgen.New(1)
	if err != nil {
		t.Fatalf("failed to create id generator: %v", err)
	}

	userRepo := database.NewUserRepository(db)
	projectRepo := database.NewProjectRepository(db)
	apiRepo := database.NewApiRepository(db)

	userUC := usecase.NewUserUsecase(userRepo, codec, sessions, idGen, log)
	projectUC := usecase.NewProjectUsecase(projectRepo, log)
	apiUC := usecase.NewApiUsecase(apiRepo, projectRepo, log)

	handlers := &Handlers{
		User:    handler.NewUserHandler(userUC, log),
		Project: handler.NewProjectHandler(projectUC, log),
		Api:     handler.NewApiHandler(apiUC, log),
		Log:     handler.NewLogHandler(logview.NewViewer(t.TempDir()), log),
		Health:  handler.NewHealthHandler(),
	}

	h := server.New(server.WithHostPorts("127.0.0.1:0"))
	Setup(h, handlers, codec, sessions)
	return h, userUC
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		t.Fatalf("failed to decode envelope: %v (%s)", err, body)
	}
	return env
}

func jsonBody(t *testing.T, v interface{}) *ut.Body {
	t.Helper()
	raw, err := sonic.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	return &ut.Body{Body: bytes.NewReader(raw), Len: len(raw)}
}

func seedAdmin(t *testing.T, uc domain.UserUsecase) {
	t.Helper()
	_, err := uc.Create(context.Background(), domain.CreateUserParams{
		Username: "admin",
		Password: "password123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
}

var jsonHeader = ut.Header{Key: "Content-Type", Value: "application/json"}

func login(t *testing.T, h *server.Hertz) string {
	t.Helper()
	body := jsonBody(t, map[string]string{"username": "admin", "password": "password123"})
	w := ut.PerformRequest(h.Engine, "POST", "/uapi-manage/auth/login", body,
		jsonHeader, ut.Header{Key: "platform", Value: "web"})
	resp := w.Result()
	if resp.StatusCode() != 200 {
		t.Fatalf("login returned HTTP %d", resp.StatusCode())
	}
	env := decodeEnvelope(t, resp.Body())
	if env.Code != 200 {
		t.Fatalf("login failed: %+v", env)
	}
	token, _ := env.Data["token"].(string)
	if token == "" {
		t.Fatal("login response carries no token")
	}
	return token
}

func TestHealthAndIndexAreOpen(t *testing.T) {
	h, _ := newTestServer(t)

	for _, path := range []string{"/uapi-manage/health", "/uapi-manage/"} {
		w := ut.PerformRequest(h.Engine, "GET", path, nil)
		if w.Result().StatusCode() != 200 {
			t.Errorf("%s should be open, got %d", path, w.Result().StatusCode())
		}
	}
}

func TestLoginRequiresPlatformHeader(t *testing.T) {
	h, uc := newTestServer(t)
	seedAdmin(t, uc)

	body := jsonBody(t, map[string]string{"username": "admin", "password": "password123"})
	w := ut.PerformRequest(h.Engine, "POST", "/uapi-manage/auth/login", body, jsonHeader)
	if w.Result().StatusCode() != 400 {
		t.Errorf("login without platform header should be 400, got %d", w.Result().StatusCode())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestServer(t)

	w := ut.PerformRequest(h.Engine, "GET", "/uapi-manage/projects", nil)
	if w.Result().StatusCode() != 401 {
		t.Errorf("expected 401 without token, got %d", w.Result().StatusCode())
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	h, uc := newTestServer(t)
	seedAdmin(t, uc)

	token := login(t, h)
	authHeader := ut.Header{Key: "Authorization", Value: "Bearer " + token}

	// 持令牌可以访问业务接口
	w := ut.PerformRequest(h.Engine, "GET", "/uapi-manage/users/current", nil, authHeader)
	resp := w.Result()
	if resp.StatusCode() != 200 {
		t.Fatalf("expected 200 with token, got %d", resp.StatusCode())
	}
	env := decodeEnvelope(t, resp.Body())
	if env.Data["username"] != "admin" {
		t.Errorf("expected current user admin, got %v", env.Data)
	}

	// 注销
	w = ut.PerformRequest(h.Engine, "POST", "/uapi-manage/auth/logout", nil, authHeader)
	if w.Result().StatusCode() != 200 {
		t.Fatalf("logout failed with %d", w.Result().StatusCode())
	}

	// 注销后令牌立即失效
	w = ut.PerformRequest(h.Engine, "GET", "/uapi-manage/users/current", nil, authHeader)
	if w.Result().StatusCode() != 401 {
		t.Errorf("revoked token should be rejected, got %d", w.Result().StatusCode())
	}

	// 注销是幂等的:同一令牌再注销一次仍然成功
	w = ut.PerformRequest(h.Engine, "POST", "/uapi-manage/auth/logout", nil, authHeader)
	if w.Result().StatusCode() != 200 {
		t.Errorf("repeated logout should succeed, got %d", w.Result().StatusCode())
	}
}

func TestRelogin_AfterLogout(t *testing.T) {
	h, uc := newTestServer(t)
	seedAdmin(t, uc)

	// 同一秒内完成登录、注销、再登录:
	// 新令牌必须与被吊销的旧令牌不同,且立即可用
	oldToken := login(t, h)
	oldAuth := ut.Header{Key: "Authorization", Value: "Bearer " + oldToken}

	w := ut.PerformRequest(h.Engine, "POST", "/uapi-manage/auth/logout", nil, oldAuth)
	if w.Result().StatusCode() != 200 {
		t.Fatalf("logout failed with %d", w.Result().StatusCode())
	}

	newToken := login(t, h)
	if newToken == oldToken {
		t.Fatal("fresh token is byte-identical to the revoked one")
	}

	newAuth := ut.Header{Key: "Authorization", Value: "Bearer " + newToken}
	w = ut.PerformRequest(h.Engine, "GET", "/uapi-manage/users/current", nil, newAuth)
	if w.Result().StatusCode() != 200 {
		t.Errorf("fresh token after relogin should be usable, got %d", w.Result().StatusCode())
	}

	// 旧令牌保持吊销状态
	w = ut.PerformRequest(h.Engine, "GET", "/uapi-manage/users/current", nil, oldAuth)
	if w.Result().StatusCode() != 401 {
		t.Errorf("old token should stay revoked, got %d", w.Result().StatusCode())
	}
}

func TestProjectApiFlow(t *testing.T) {
	h, uc := newTestServer(t)
	seedAdmin(t, uc)
	token := login(t, h)
	authHeader := ut.Header{Key: "Authorization", Value: "Bearer " + token}

	// 创建项目
	body := jsonBody(t, map[string]string{"id": "shop", "name": "Shop backend"})
	w := ut.PerformRequest(h.Engine, "POST", "/uapi-manage/projects", body, jsonHeader, authHeader)
	env := decodeEnvelope(t, w.Result().Body())
	if env.Code != 201 {
		t.Fatalf("create project failed: %+v", env)
	}

	// 同 ID 再建冲突
	body = jsonBody(t, map[string]string{"id": "shop", "name": "Another"})
	w = ut.PerformRequest(h.Engine, "POST", "/uapi-manage/projects", body, jsonHeader, authHeader)
	env = decodeEnvelope(t, w.Result().Body())
	if env.Code != 400 {
		t.Errorf("duplicate project should be code 400, got %+v", env)
	}

	// 创建接口
	body = jsonBody(t, map[string]string{
		"id": "api-1", "projectId": "shop", "name": "list orders",
		"method": "GET", "url": "/orders",
	})
	w = ut.PerformRequest(h.Engine, "POST", "/uapi-manage/apis", body, jsonHeader, authHeader)
	env = decodeEnvelope(t, w.Result().Body())
	if env.Code != 201 {
		t.Fatalf("create api failed: %+v", env)
	}

	// 项目下的接口列表
	w = ut.PerformRequest(h.Engine, "GET", "/uapi-manage/projects/shop/apis", nil, authHeader)
	resp := w.Result()
	if resp.StatusCode() != 200 {
		t.Fatalf("list apis failed with %d", resp.StatusCode())
	}

	// 批量删除项目下的接口
	w = ut.PerformRequest(h.Engine, "POST", "/uapi-manage/projects/shop/apis/delete", nil, authHeader)
	env = decodeEnvelope(t, w.Result().Body())
	if env.Code != 200 {
		t.Fatalf("bulk delete failed: %+v", env)
	}
	if deleted, _ := env.Data["deleted"].(float64); deleted != 1 {
		t.Errorf("expected 1 deleted, got %v", env.Data["deleted"])
	}

	// 删除项目后获取返回 404 码
	w = ut.PerformRequest(h.Engine, "POST", "/uapi-manage/projects/shop/delete", nil, authHeader)
	env = decodeEnvelope(t, w.Result().Body())
	if env.Code != 200 {
		t.Fatalf("delete project failed: %+v", env)
	}
	w = ut.PerformRequest(h.Engine, "GET", "/uapi-manage/projects/shop", nil, authHeader)
	env = decodeEnvelope(t, w.Result().Body())
	if env.Code != 404 {
		t.Errorf("deleted project should be code 404, got %+v", env)
	}
}

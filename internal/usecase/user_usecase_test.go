package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/auth"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/idgen"
)

// 内存版 UserRepository，避免依赖数据库
type fakeUserRepository struct {
	users     map[string]*entity.User // key 是 ID
	updateErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; ok {
		return domain.NewConflictError("duplicate id")
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepository) GetByID(ctx context.Context, userID string, includeDeleted bool) (*entity.User, error) {
	user, ok := r.users[userID]
	if !ok || (!includeDeleted && user.IsDeleted) {
		return nil, domain.NewNotFoundError("user", userID)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepository) GetByUsername(ctx context.Context, username string, includeDeleted bool) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username && (includeDeleted || !user.IsDeleted) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.NewNotFoundError("user", username)
}

func (r *fakeUserRepository) GetByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email && (includeDeleted || !user.IsDeleted) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.NewNotFoundError("user", email)
}

func (r *fakeUserRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.users {
		if includeDeleted || !user.IsDeleted {
			clone := *user
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.NewNotFoundError("user", user.ID)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func newTestUserUsecase(t *testing.T, repo *fakeUserRepository) (domain.UserUsecase, *auth.Codec, *auth.RevocationSet) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	codec := auth.NewCodec("test-secret-test-secret-test-secret!", "test-salt", time.Hour)
	sessions := auth.NewRevocationSet()
	idGen, err := idgen.New(1)
	if err != nil {
		t.Fatalf("failed to create id generator: %v", err)
	}
	return NewUserUsecase(repo, codec, sessions, idGen, logger), codec, sessions
}

func seedUser(repo *fakeUserRepository, codec *auth.Codec, username, password string, status entity.Status) *entity.User {
	user := &entity.User{
		ID:        "uid-" + username,
		Username:  username,
		Password:  codec.HashPassword(password),
		Role:      entity.RoleUser,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	repo.users[user.ID] = user
	return user
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		setup       func(*fakeUserRepository, *auth.Codec)
		wantErr     bool
		errContains string
	}{
		{
			name:     "成功登录",
			username: "alice",
			password: "password123",
			setup: func(r *fakeUserRepository, c *auth.Codec) {
				seedUser(r, c, "alice", "password123", entity.StatusActive)
			},
		},
		{
			name:        "用户不存在",
			username:    "ghost",
			password:    "password123",
			setup:       func(r *fakeUserRepository, c *auth.Codec) {},
			wantErr:     true,
			errContains: "invalid username or password",
		},
		{
			name:     "密码错误",
			username: "alice",
			password: "wrong-password",
			setup: func(r *fakeUserRepository, c *auth.Codec) {
				seedUser(r, c, "alice", "password123", entity.StatusActive)
			},
			wantErr:     true,
			errContains: "invalid username or password",
		},
		{
			name:     "账号停用",
			username: "bob",
			password: "password123",
			setup: func(r *fakeUserRepository, c *auth.Codec) {
				seedUser(r, c, "bob", "password123", entity.StatusInactive)
			},
			wantErr:     true,
			errContains: "account is disabled",
		},
		{
			name:     "已删除用户不能登录",
			username: "carol",
			password: "password123",
			setup: func(r *fakeUserRepository, c *auth.Codec) {
				u := seedUser(r, c, "carol", "password123", entity.StatusActive)
				u.IsDeleted = true
			},
			wantErr:     true,
			errContains: "invalid username or password",
		},
		{
			name:        "缺少用户名",
			username:    "",
			password:    "password123",
			setup:       func(r *fakeUserRepository, c *auth.Codec) {},
			wantErr:     true,
			errContains: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepository()
			uc, codec, _ := newTestUserUsecase(t, repo)
			tt.setup(repo, codec)

			token, user, err := uc.Login(context.Background(), tt.username, tt.password)
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
			if token == "" {
				t.Error("expected a token")
			}
			if user.LastLoginTime == nil {
				t.Error("last login time should be set")
			}

			// 登录时间必须已经落库
			stored := repo.users[user.ID]
			if stored.LastLoginTime == nil {
				t.Error("last login time should be persisted")
			}

			// 令牌必须能解析回该用户
			gotID, err := codec.DecodeToken(token)
			if err != nil || gotID != user.ID {
				t.Errorf("token does not decode to user %s: id=%s err=%v", user.ID, gotID, err)
			}
		})
	}
}

func TestLogin_PersistFailureFailsLogin(t *testing.T) {
	repo := newFakeUserRepository()
	uc, codec, _ := newTestUserUsecase(t, repo)
	seedUser(repo, codec, "alice", "password123", entity.StatusActive)
	repo.updateErr = fmt.Errorf("disk full")

	token, _, err := uc.Login(context.Background(), "alice", "password123")
	if err == nil {
		t.Fatal("login should fail when the login time cannot be persisted")
	}
	if !domain.IsInternal(err) {
		t.Errorf("expected internal error, got %v", err)
	}
	if token != "" {
		t.Error("no token should be issued on persist failure")
	}
}

func TestLogout(t *testing.T) {
	repo := newFakeUserRepository()
	uc, codec, sessions := newTestUserUsecase(t, repo)
	seedUser(repo, codec, "alice", "password123", entity.StatusActive)

	token, _, err := uc.Login(context.Background(), "alice", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := uc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if !sessions.IsRevoked(token) {
		t.Error("token should be revoked after logout")
	}

	// 注销是幂等的
	if err := uc.Logout(context.Background(), token); err != nil {
		t.Errorf("repeated logout should succeed: %v", err)
	}

	if err := uc.Logout(context.Background(), ""); err == nil {
		t.Error("empty token should be rejected")
	}
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name        string
		params      domain.CreateUserParams
		setup       func(*fakeUserRepository, *auth.Codec)
		wantErr     bool
		errContains string
	}{
		{
			name:   "成功创建",
			params: domain.CreateUserParams{Username: "alice", Password: "password123"},
			setup:  func(r *fakeUserRepository, c *auth.Codec) {},
		},
		{
			name:   "用户名重复",
			params: domain.CreateUserParams{Username: "alice", Password: "password123"},
			setup: func(r *fakeUserRepository, c *auth.Codec) {
				seedUser(r, c, "alice", "other-password", entity.StatusActive)
			},
			wantErr:     true,
			errContains: "already exists",
		},
		{
			name:   "删除用户的用户名可以重用",
			params: domain.CreateUserParams{Username: "alice", Password: "password123"},
			setup: func(r *fakeUserRepository, c *auth.Codec) {
				u := seedUser(r, c, "alice", "other-password", entity.StatusActive)
				u.IsDeleted = true
			},
		},
		{
			name:   "邮箱重复",
			params: domain.CreateUserParams{Username: "bob", Password: "password123", Email: "alice@example.com"},
			setup: func(r *fakeUserRepository, c *auth.Codec) {
				u := seedUser(r, c, "alice", "other-password", entity.StatusActive)
				u.Email = "alice@example.com"
			},
			wantErr:     true,
			errContains: "already registered",
		},
		{
			name:        "非法角色",
			params:      domain.CreateUserParams{Username: "alice", Password: "password123", Role: "superadmin"},
			setup:       func(r *fakeUserRepository, c *auth.Codec) {},
			wantErr:     true,
			errContains: "invalid role",
		},
		{
			name:        "缺少密码",
			params:      domain.CreateUserParams{Username: "alice"},
			setup:       func(r *fakeUserRepository, c *auth.Codec) {},
			wantErr:     true,
			errContains: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepository()
			uc, codec, _ := newTestUserUsecase(t, repo)
			tt.setup(repo, codec)

			user, err := uc.Create(context.Background(), tt.params)
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
			if user.ID == "" {
				t.Error("user should be assigned an id")
			}
			if user.Password == tt.params.Password {
				t.Error("plaintext password must not be stored")
			}
			if user.Password != codec.HashPassword(tt.params.Password) {
				t.Error("stored password should be the digest of the plaintext")
			}
			if user.Status != entity.StatusActive {
				t.Errorf("new users should be active, got %s", user.Status)
			}
			if user.Role != entity.RoleUser {
				t.Errorf("role should default to user, got %s", user.Role)
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	repo := newFakeUserRepository()
	uc, codec, _ := newTestUserUsecase(t, repo)
	seeded := seedUser(repo, codec, "alice", "password123", entity.StatusActive)

	newPassword := "new-password"
	newEmail := "alice@example.com"
	inactive := entity.StatusInactive

	user, err := uc.Update(context.Background(), seeded.ID, domain.UpdateUserParams{
		Password: &newPassword,
		Email:    &newEmail,
		Status:   &inactive,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if user.Password != codec.HashPassword(newPassword) {
		t.Error("updated password should be re-hashed")
	}
	if user.Email != newEmail {
		t.Errorf("expected email %s, got %s", newEmail, user.Email)
	}
	if user.Status != entity.StatusInactive {
		t.Errorf("expected inactive status, got %s", user.Status)
	}

	// 未携带的字段保持不变
	if user.Username != "alice" {
		t.Errorf("username should be unchanged, got %s", user.Username)
	}

	// 非法状态被拒绝
	bad := entity.Status("frozen")
	if _, err := uc.Update(context.Background(), seeded.ID, domain.UpdateUserParams{Status: &bad}); err == nil {
		t.Error("invalid status should be rejected")
	}

	// 空密码被拒绝
	empty := ""
	if _, err := uc.Update(context.Background(), seeded.ID, domain.UpdateUserParams{Password: &empty}); err == nil {
		t.Error("empty password should be rejected")
	}
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepository()
	uc, codec, _ := newTestUserUsecase(t, repo)
	seeded := seedUser(repo, codec, "alice", "password123", entity.StatusActive)

	if err := uc.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// 记录仍在，只是标记删除
	stored := repo.users[seeded.ID]
	if stored == nil || !stored.IsDeleted {
		t.Fatal("user should be soft deleted, not removed")
	}

	// 删除后不可见
	if _, err := uc.Get(context.Background(), seeded.ID); !domain.IsNotFound(err) {
		t.Errorf("deleted user should be invisible, got %v", err)
	}

	// 重复删除返回 NotFound
	if err := uc.Delete(context.Background(), seeded.ID); !domain.IsNotFound(err) {
		t.Errorf("repeated delete should return not found, got %v", err)
	}
}

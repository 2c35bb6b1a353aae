package database

import (
	"time"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain/entity"
)

// 持久化模型与领域实体分离，转换集中在本文件。
// 软删除使用显式 is_deleted 列而非 gorm.DeletedAt：用户名唯一性只约束
// 未删除用户，而项目/接口 ID 唯一性包含已删除记录，统一的删除钩子无法
// 同时表达这两种语义。

type userModel struct {
	ID            string     `gorm:"column:id;primaryKey;size:32"`
	Username      string     `gorm:"column:username;size:64;index"`
	Password      string     `gorm:"column:password;size:128"`
	Email         string     `gorm:"column:email;size:128"`
	Avatar        string     `gorm:"column:avatar;size:256"`
	Role          string     `gorm:"column:role;size:16"`
	Status        string     `gorm:"column:status;size:16"`
	LastLoginTime *time.Time `gorm:"column:last_login_time"`
	IsDeleted     bool       `gorm:"column:is_deleted;index"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type projectModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:64"`
	Name      string    `gorm:"column:name;size:128"`
	IsDeleted bool      `gorm:"column:is_deleted;index"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

type apiModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:64"`
	ProjectID   string    `gorm:"column:project_id;size:64;index"`
	Name        string    `gorm:"column:name;size:128"`
	Description string    `gorm:"column:description;size:512"`
	Method      string    `gorm:"column:method;size:8"`
	URL         string    `gorm:"column:url;size:512"`
	Param       string    `gorm:"column:param;type:text"`
	Response    string    `gorm:"column:response;type:text"`
	IsDeleted   bool      `gorm:"column:is_deleted;index"`
	CreatedAt   time.Time `gorm:"column:created_at;index"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (apiModel) TableName() string { return "apis" }

// ============ 转换函数 ============

func toUserModel(u *entity.User) *userModel {
	return &userModel{
		ID:            u.ID,
		Username:      u.Username,
		Password:      u.Password,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Role:          string(u.Role),
		Status:        string(u.Status),
		LastLoginTime: u.LastLoginTime,
		IsDeleted:     u.IsDeleted,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toUserEntity(m *userModel) *entity.User {
	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Password:      m.Password,
		Email:         m.Email,
		Avatar:        m.Avatar,
		Role:          entity.Role(m.Role),
		Status:        entity.Status(m.Status),
		LastLoginTime: m.LastLoginTime,
		IsDeleted:     m.IsDeleted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toProjectModel(p *entity.Project) *projectModel {
	return &projectModel{
		ID:        p.ID,
		Name:      p.Name,
		IsDeleted: p.IsDeleted,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProjectEntity(m *projectModel) *entity.Project {
	return &entity.Project{
		ID:        m.ID,
		Name:      m.Name,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toApiModel(a *entity.Api) *apiModel {
	return &apiModel{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		Name:        a.Name,
		Description: a.Description,
		Method:      string(a.Method),
		URL:         a.URL,
		Param:       a.Param,
		Response:    a.Response,
		IsDeleted:   a.IsDeleted,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toApiEntity(m *apiModel) *entity.Api {
	return &entity.Api{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Description: m.Description,
		Method:      entity.Method(m.Method),
		URL:         m.URL,
		Param:       m.Param,
		Response:    m.Response,
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

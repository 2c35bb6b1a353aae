package entity

import "time"

// Role 用户角色
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid 角色是否在枚举范围内
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Status 用户状态
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid 状态是否在枚举范围内
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// User 用户实体（Domain 层，不依赖 JSON 序列化）
type User struct {
	ID            string
	Username      string
	Password      string // 密码摘要，绝不外传
	Email         string
	Avatar        string
	Role          Role
	Status        Status
	LastLoginTime *time.Time
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

package entity

import "time"

// Project 项目实体
type Project struct {
	ID        string // 调用方提供，全局唯一（含已删除项目）
	Name      string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

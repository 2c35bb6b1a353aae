package entity

import "time"

// Method 接口请求方法，仅支持 GET 和 POST
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// IsValid 方法是否在枚举范围内
func (m Method) IsValid() bool {
	return m == MethodGet || m == MethodPost
}

// Api 接口实体
type Api struct {
	ID          string // 调用方提供，全局唯一（含已删除接口）
	ProjectID   string // 所属项目，创建时在服务层校验，无外键约束
	Name        string
	Description string
	Method      Method
	URL         string
	Param       string // 序列化的参数说明，服务层不解析
	Response    string // 序列化的响应示例，服务层不解析
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package domain

import (
	"errors"
	"fmt"
)

// 预定义的领域错误，作为错误分类的哨兵
var (
	// ErrValidation 请求参数缺失或非法
	ErrValidation = errors.New("validation error")
	// ErrUnauthenticated 令牌缺失、非法或已失效
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound 资源不存在或已被软删除
	ErrNotFound = errors.New("resource not found")
	// ErrConflict 标识或用户名重复
	ErrConflict = errors.New("resource conflict")
	// ErrInternal 存储或编解码内部错误
	ErrInternal = errors.New("internal error")
)

// DomainError 领域错误：面向用户的消息加上仅用于日志的内部原因
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error 实现 error 接口（用于日志与内部传递）
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage 返回对用户友好的错误消息，不包含内部细节
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap 返回包装的错误
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError 创建参数校验错误
func NewValidationError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrValidation,
	}
}

// NewUnauthenticatedError 创建认证失败错误
func NewUnauthenticatedError(message string) error {
	return &DomainError{
		Code:    "UNAUTHENTICATED",
		Message: message,
		Err:     ErrUnauthenticated,
	}
}

// NewNotFoundError 创建资源不存在错误
func NewNotFoundError(resourceType, id string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, id),
		Err:     ErrNotFound,
	}
}

// NewConflictError 创建资源冲突错误
func NewConflictError(message string) error {
	return &DomainError{
		Code:    "CONFLICT",
		Message: message,
		Err:     ErrConflict,
	}
}

// NewInternalError 创建内部错误，面向用户的消息不携带底层细节
func NewInternalError(message string, err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsValidation 判断是否为参数校验错误
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnauthenticated 判断是否为认证失败错误
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsNotFound 判断是否为资源不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict 判断是否为资源冲突错误
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInternal 判断是否为内部错误
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

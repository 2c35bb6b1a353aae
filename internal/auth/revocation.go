package auth

import "sync"

// RevocationSet 已吊销令牌集合。显式注入而非包级单例，
// 便于测试重置，也给将来换成外部 KV 存储留出接口位置。
// 集合只增不减：令牌随 JWT 过期自然失效，进程生命周期内的增长可接受。
type RevocationSet struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewRevocationSet 创建空的吊销集合
func NewRevocationSet() *RevocationSet {
	return &RevocationSet{
		revoked: make(map[string]struct{}),
	}
}

// Invalidate 吊销令牌（幂等）
func (s *RevocationSet) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = struct{}{}
}

// IsRevoked 令牌是否已被吊销
func (s *RevocationSet) IsRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[token]
	return ok
}

// Reset 清空集合，仅用于测试
func (s *RevocationSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked = make(map[string]struct{})
}

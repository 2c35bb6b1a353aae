// Package auth 提供密码摘要、令牌编解码与令牌吊销集合。
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// ErrInvalidToken 令牌非法：格式错误、签名不符或已过期
var ErrInvalidToken = errors.New("invalid token")

const (
	pbkdf2Iterations = 4096
	pbkdf2KeyLen     = 32
)

// Codec 身份编解码器：确定性密码摘要与可逆的用户令牌。
// 摘要使用固定盐的 PBKDF2-SHA256，同一输入永远得到同一摘要，
// 校验时直接比较摘要字符串。
type Codec struct {
	secret []byte
	salt   []byte
	ttl    time.Duration
}

// NewCodec 创建编解码器
func NewCodec(jwtSecret, passwordSalt string, tokenTTL time.Duration) *Codec {
	return &Codec{
		secret: []byte(jwtSecret),
		salt:   []byte(passwordSalt),
		ttl:    tokenTTL,
	}
}

// HashPassword 计算密码摘要（十六进制），确定性且不可逆
func (c *Codec) HashPassword(plain string) string {
	digest := pbkdf2.Key([]byte(plain), c.salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(digest)
}

// IssueToken 为用户签发令牌，sub 为用户 ID。
// jti 保证同一用户同一秒内签发的令牌也互不相同：
// 吊销集合按令牌字符串比对，注销后立即重新登录必须拿到新串。
func (c *Codec) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// DecodeToken 解出令牌中的用户 ID。
// 任何非法、被篡改或过期的令牌都返回 ErrInvalidToken，不会 panic。
func (c *Codec) DecodeToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ecache"
)

var ErrKeyNotFound = errors.New("key not found")

type VerificationCodeCache interface {
	SetEmailCode(ctx context.Context, email string, code string) error
	GetEmailCode(ctx context.Context, email string) (string, error)
	DeleteEmailCode(ctx context.Context, email string) error
}

type verificationCodeCache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewVerificationCodeCache 注意缓存前缀
func NewVerificationCodeCache(c ecache.Cache) VerificationCodeCache {
	return &verificationCodeCache{
		cache: &ecache.NamespaceCache{
			Namespace: "otp:",
			C:         c,
		},
		// 重置密码验证码十分钟内有效
		expiration: time.Minute * 10,
	}
}

func (s *verificationCodeCache) SetEmailCode(ctx context.Context, email string, code string) error {
	return s.cache.Set(ctx, email, code, s.expiration)
}

func (s *verificationCodeCache) GetEmailCode(ctx context.Context, email string) (string, error) {
	val := s.cache.Get(ctx, email)
	if val.Err != nil {
		return "", val.Err
	}
	if val.KeyNotFound() {
		return "", ErrKeyNotFound
	}
	return val.Val.(string), nil
}

func (s *verificationCodeCache) DeleteEmailCode(ctx context.Context, email string) error {
	_, err := s.cache.Delete(ctx, email)
	return err
}

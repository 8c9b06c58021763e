package repository

import (
	"context"

	"github.com/ecodeclub/greenshop/internal/user/internal/repository/cache"
)

var ErrCodeNotFound = cache.ErrKeyNotFound

type VerificationCodeRepo interface {
	SetEmailCode(ctx context.Context, email string, code string) error
	GetEmailCode(ctx context.Context, email string) (string, error)
	DeleteEmailCode(ctx context.Context, email string) error
}

type verificationCodeRepo struct {
	cache cache.VerificationCodeCache
}

func NewVerificationCodeRepo(c cache.VerificationCodeCache) VerificationCodeRepo {
	return &verificationCodeRepo{
		cache: c,
	}
}

func (v *verificationCodeRepo) SetEmailCode(ctx context.Context, email string, code string) error {
	return v.cache.SetEmailCode(ctx, email, code)
}

func (v *verificationCodeRepo) GetEmailCode(ctx context.Context, email string) (string, error) {
	return v.cache.GetEmailCode(ctx, email)
}

func (v *verificationCodeRepo) DeleteEmailCode(ctx context.Context, email string) error {
	return v.cache.DeleteEmailCode(ctx, email)
}

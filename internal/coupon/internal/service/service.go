// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/greenshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/greenshop/internal/coupon/internal/repository"
)

var (
	ErrCouponNotFound  = repository.ErrCouponNotFound
	ErrCouponDuplicate = repository.ErrCouponDuplicate
	ErrCouponExhausted = repository.ErrCouponExhausted
)

//go:generate mockgen -source=./service.go -package=couponmocks -destination=../../mocks/coupon.mock.go Service
type Service interface {
	Create(ctx context.Context, c domain.Coupon) (domain.Coupon, error)
	FindByID(ctx context.Context, id int64) (domain.Coupon, error)
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	ListUsable(ctx context.Context) ([]domain.Coupon, error)
	Update(ctx context.Context, c domain.Coupon) error
	Delete(ctx context.Context, id int64) error
	// Redeem 消耗一次使用次数，返回消耗后的优惠券。
	// 不存在返回 ErrCouponNotFound，用完了返回 ErrCouponExhausted
	Redeem(ctx context.Context, code string) (domain.Coupon, error)
	// Release 是 Redeem 的补偿动作
	Release(ctx context.Context, code string) error
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CouponRepository
}

func (s *service) Create(ctx context.Context, c domain.Coupon) (domain.Coupon, error) {
	if c.MaxUsage < 0 || c.DiscountValue < 0 {
		return domain.Coupon{}, fmt.Errorf("非法的优惠券参数: discount=%d, maxUsage=%d", c.DiscountValue, c.MaxUsage)
	}
	c.CurrentUsage = 0
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Coupon{}, err
	}
	c.ID = id
	return c, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Coupon, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *service) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.List(ctx)
}

func (s *service) ListUsable(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.ListUsable(ctx)
}

func (s *service) Update(ctx context.Context, c domain.Coupon) error {
	if c.CurrentUsage < 0 || c.MaxUsage < 0 || c.CurrentUsage > c.MaxUsage {
		return fmt.Errorf("非法的使用次数: current=%d, max=%d", c.CurrentUsage, c.MaxUsage)
	}
	return s.repo.Update(ctx, c)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Redeem(ctx context.Context, code string) (domain.Coupon, error) {
	err := s.repo.Redeem(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return s.repo.FindByCode(ctx, code)
}

func (s *service) Release(ctx context.Context, code string) error {
	return s.repo.Release(ctx, code)
}

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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/greenshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/greenshop/internal/coupon/internal/repository/dao"
)

var (
	ErrCouponNotFound  = dao.ErrDataNotFound
	ErrCouponDuplicate = dao.ErrCouponDuplicate
	ErrCouponExhausted = dao.ErrCouponExhausted
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/coupon.mock.go CouponRepository
type CouponRepository interface {
	Create(ctx context.Context, c domain.Coupon) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Coupon, error)
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	ListUsable(ctx context.Context) ([]domain.Coupon, error)
	Update(ctx context.Context, c domain.Coupon) error
	Delete(ctx context.Context, id int64) error
	Redeem(ctx context.Context, code string) error
	Release(ctx context.Context, code string) error
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{d: d}
}

type couponRepository struct {
	d dao.CouponDAO
}

func (r *couponRepository) Create(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.d.Insert(ctx, r.toEntity(c))
}

func (r *couponRepository) FindByID(ctx context.Context, id int64) (domain.Coupon, error) {
	c, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := r.d.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	cs, err := r.d.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), nil
}

func (r *couponRepository) ListUsable(ctx context.Context) ([]domain.Coupon, error) {
	cs, err := r.d.ListUsable(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), nil
}

func (r *couponRepository) Update(ctx context.Context, c domain.Coupon) error {
	return r.d.Update(ctx, r.toEntity(c))
}

func (r *couponRepository) Delete(ctx context.Context, id int64) error {
	return r.d.Delete(ctx, id)
}

func (r *couponRepository) Redeem(ctx context.Context, code string) error {
	return r.d.Redeem(ctx, code)
}

func (r *couponRepository) Release(ctx context.Context, code string) error {
	return r.d.Release(ctx, code)
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:            c.ID,
		Code:          c.Code,
		DiscountValue: c.DiscountValue,
		CurrentUsage:  c.CurrentUsage,
		MaxUsage:      c.MaxUsage,
	}
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:            c.Id,
		Code:          c.Code,
		DiscountValue: c.DiscountValue,
		CurrentUsage:  c.CurrentUsage,
		MaxUsage:      c.MaxUsage,
		Ctime:         c.Ctime,
		Utime:         c.Utime,
	}
}

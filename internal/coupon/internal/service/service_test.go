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
	"testing"

	"github.com/ecodeclub/greenshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/greenshop/internal/coupon/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository 复刻了 DAO 的带条件更新语义，方便测试到达上限的边界
type memoryRepository struct {
	repository.CouponRepository
	coupons map[string]*domain.Coupon
}

func newMemoryRepository(cs ...domain.Coupon) *memoryRepository {
	m := &memoryRepository{coupons: make(map[string]*domain.Coupon, len(cs))}
	for i := range cs {
		c := cs[i]
		m.coupons[c.Code] = &c
	}
	return m
}

func (m *memoryRepository) FindByCode(_ context.Context, code string) (domain.Coupon, error) {
	c, ok := m.coupons[code]
	if !ok {
		return domain.Coupon{}, repository.ErrCouponNotFound
	}
	return *c, nil
}

func (m *memoryRepository) Redeem(_ context.Context, code string) error {
	c, ok := m.coupons[code]
	if !ok {
		return repository.ErrCouponNotFound
	}
	if c.CurrentUsage >= c.MaxUsage {
		return repository.ErrCouponExhausted
	}
	c.CurrentUsage++
	return nil
}

func (m *memoryRepository) Release(_ context.Context, code string) error {
	c, ok := m.coupons[code]
	if ok && c.CurrentUsage > 0 {
		c.CurrentUsage--
	}
	return nil
}

func TestService_Redeem(t *testing.T) {
	testCases := []struct {
		name     string
		coupon   domain.Coupon
		code     string
		wantErr  error
		wantUsed int64
	}{
		{
			name:     "正常消耗",
			coupon:   domain.Coupon{Code: "TET2024", DiscountValue: 50000, CurrentUsage: 0, MaxUsage: 10},
			code:     "TET2024",
			wantUsed: 1,
		},
		{
			name:     "最后一次",
			coupon:   domain.Coupon{Code: "TET2024", DiscountValue: 50000, CurrentUsage: 4, MaxUsage: 5},
			code:     "TET2024",
			wantUsed: 5,
		},
		{
			name:     "已达上限",
			coupon:   domain.Coupon{Code: "TET2024", DiscountValue: 50000, CurrentUsage: 5, MaxUsage: 5},
			code:     "TET2024",
			wantErr:  ErrCouponExhausted,
			wantUsed: 5,
		},
		{
			name:    "不存在",
			coupon:  domain.Coupon{Code: "TET2024", MaxUsage: 5},
			code:    "tet2024",
			wantErr: ErrCouponNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemoryRepository(tc.coupon)
			svc := NewService(repo)

			c, err := svc.Redeem(context.Background(), tc.code)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantUsed, c.CurrentUsage)
			}
			// 原始券上的计数只会被成功的消耗改动
			got, findErr := repo.FindByCode(context.Background(), tc.coupon.Code)
			require.NoError(t, findErr)
			if tc.wantErr != nil {
				assert.Equal(t, tc.coupon.CurrentUsage, got.CurrentUsage)
			} else {
				assert.Equal(t, tc.wantUsed, got.CurrentUsage)
			}
		})
	}
}

func TestService_RedeemThenExhausted(t *testing.T) {
	// currentUsage:4 maxUsage:5，一次成功之后第二次必须失败
	repo := newMemoryRepository(domain.Coupon{Code: "SPRING", DiscountValue: 20000, CurrentUsage: 4, MaxUsage: 5})
	svc := NewService(repo)

	c, err := svc.Redeem(context.Background(), "SPRING")
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.CurrentUsage)

	_, err = svc.Redeem(context.Background(), "SPRING")
	assert.ErrorIs(t, err, ErrCouponExhausted)

	got, err := repo.FindByCode(context.Background(), "SPRING")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.CurrentUsage)
}

func TestService_Release(t *testing.T) {
	repo := newMemoryRepository(domain.Coupon{Code: "SPRING", CurrentUsage: 1, MaxUsage: 5})
	svc := NewService(repo)

	require.NoError(t, svc.Release(context.Background(), "SPRING"))
	got, err := repo.FindByCode(context.Background(), "SPRING")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.CurrentUsage)

	// 已经是 0 不会变成负数
	require.NoError(t, svc.Release(context.Background(), "SPRING"))
	got, err = repo.FindByCode(context.Background(), "SPRING")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.CurrentUsage)
}

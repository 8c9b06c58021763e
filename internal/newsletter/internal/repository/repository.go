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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/greenshop/internal/newsletter/internal/domain"
	"github.com/ecodeclub/greenshop/internal/newsletter/internal/repository/dao"
)

var (
	ErrSubscriptionNotFound = dao.ErrDataNotFound
	ErrDuplicateEmail       = dao.ErrDuplicateEmail
)

type SubscriptionRepository interface {
	Create(ctx context.Context, s domain.Subscription) (int64, error)
	Update(ctx context.Context, s domain.Subscription) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Subscription, error)
	ListPending(ctx context.Context) ([]domain.Subscription, error)
}

type subscriptionRepository struct {
	dao dao.SubscriptionDAO
}

func NewSubscriptionRepository(d dao.SubscriptionDAO) SubscriptionRepository {
	return &subscriptionRepository{dao: d}
}

func (r *subscriptionRepository) Create(ctx context.Context, s domain.Subscription) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(s))
}

func (r *subscriptionRepository) Update(ctx context.Context, s domain.Subscription) error {
	return r.dao.Update(ctx, r.toEntity(s))
}

func (r *subscriptionRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id int64) (domain.Subscription, error) {
	s, err := r.dao.FindByID(ctx, id)
	return r.toDomain(s), err
}

func (r *subscriptionRepository) ListPending(ctx context.Context) ([]domain.Subscription, error) {
	ss, err := r.dao.ListPending(ctx)
	return slice.Map(ss, func(idx int, src dao.Subscription) domain.Subscription {
		return r.toDomain(src)
	}), err
}

func (r *subscriptionRepository) toEntity(s domain.Subscription) dao.Subscription {
	return dao.Subscription{
		ID:    s.ID,
		Email: s.Email,
		CouponID: sql.NullInt64{
			Int64: s.CouponID,
			Valid: s.CouponID != 0,
		},
		Consent: s.Consent,
		Done:    s.Done,
	}
}

func (r *subscriptionRepository) toDomain(s dao.Subscription) domain.Subscription {
	return domain.Subscription{
		ID:       s.ID,
		Email:    s.Email,
		CouponID: s.CouponID.Int64,
		Consent:  s.Consent,
		Done:     s.Done,
		Ctime:    s.Ctime,
		Utime:    s.Utime,
	}
}

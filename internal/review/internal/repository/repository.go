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
	"github.com/ecodeclub/greenshop/internal/review/internal/domain"
	"github.com/ecodeclub/greenshop/internal/review/internal/repository/dao"
)

var ErrReviewNotFound = dao.ErrDataNotFound

type ReviewRepository interface {
	Create(ctx context.Context, r domain.Review) (int64, error)
	Update(ctx context.Context, r domain.Review) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Review, error)
	List(ctx context.Context, offset, limit int) ([]domain.Review, error)
	ListActiveByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
}

type reviewRepository struct {
	dao dao.ReviewDAO
}

func NewReviewRepository(d dao.ReviewDAO) ReviewRepository {
	return &reviewRepository{dao: d}
}

func (r *reviewRepository) Create(ctx context.Context, rv domain.Review) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(rv))
}

func (r *reviewRepository) Update(ctx context.Context, rv domain.Review) error {
	return r.dao.Update(ctx, r.toEntity(rv))
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (domain.Review, error) {
	rv, err := r.dao.FindByID(ctx, id)
	return r.toDomain(rv), err
}

func (r *reviewRepository) List(ctx context.Context, offset, limit int) ([]domain.Review, error) {
	rs, err := r.dao.List(ctx, offset, limit)
	return r.toDomains(rs), err
}

func (r *reviewRepository) ListActiveByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	rs, err := r.dao.ListActiveByProduct(ctx, productID)
	return r.toDomains(rs), err
}

func (r *reviewRepository) toEntity(rv domain.Review) dao.Review {
	return dao.Review{
		ID:        rv.ID,
		ProductID: rv.ProductID,
		Name:      rv.Name,
		Email:     rv.Email,
		Content:   rv.Content,
		Rate:      rv.Rate,
		Active:    rv.Active,
	}
}

func (r *reviewRepository) toDomain(rv dao.Review) domain.Review {
	return domain.Review{
		ID:        rv.ID,
		ProductID: rv.ProductID,
		Name:      rv.Name,
		Email:     rv.Email,
		Content:   rv.Content,
		Rate:      rv.Rate,
		Active:    rv.Active,
		Ctime:     rv.Ctime,
		Utime:     rv.Utime,
	}
}

func (r *reviewRepository) toDomains(rs []dao.Review) []domain.Review {
	return slice.Map(rs, func(idx int, src dao.Review) domain.Review {
		return r.toDomain(src)
	})
}

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
	"errors"

	"github.com/ecodeclub/greenshop/internal/product"
	"github.com/ecodeclub/greenshop/internal/review/internal/domain"
	"github.com/ecodeclub/greenshop/internal/review/internal/repository"
)

var (
	ErrReviewNotFound  = repository.ErrReviewNotFound
	ErrProductNotFound = product.ErrProductNotFound
	ErrInvalidRate     = errors.New("评分必须在 1 到 5 之间")
)

//go:generate mockgen -source=./service.go -package=reviewmocks -destination=../../mocks/review.mock.go Service
type Service interface {
	Create(ctx context.Context, r domain.Review) (int64, error)
	Update(ctx context.Context, r domain.Review) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Review, error)
	List(ctx context.Context, offset, limit int) ([]domain.Review, error)
	ListActiveByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
}

type service struct {
	repo       repository.ReviewRepository
	productSvc product.Service
}

func NewService(repo repository.ReviewRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
	}
}

func (s *service) Create(ctx context.Context, r domain.Review) (int64, error) {
	if !r.ValidRate() {
		return 0, ErrInvalidRate
	}
	// 商品必须存在，评价才有挂靠对象
	_, err := s.productSvc.FindByID(ctx, r.ProductID)
	if err != nil {
		return 0, err
	}
	// 新评价默认不展示，等审核
	r.Active = false
	return s.repo.Create(ctx, r)
}

func (s *service) Update(ctx context.Context, r domain.Review) error {
	if r.Rate != 0 && !r.ValidRate() {
		return ErrInvalidRate
	}
	return s.repo.Update(ctx, r)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Review, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) ListActiveByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	return s.repo.ListActiveByProduct(ctx, productID)
}

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

	"github.com/ecodeclub/greenshop/internal/product/internal/domain"
	"github.com/ecodeclub/greenshop/internal/product/internal/repository"
)

var (
	ErrProductNotFound = repository.ErrProductNotFound
	ErrDuplicateName   = repository.ErrDuplicateName
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListOnShelf(ctx context.Context) ([]domain.Product, error)
	ListHot(ctx context.Context) ([]domain.Product, error)
	ListRelated(ctx context.Context, productID int64, limit int) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListActiveCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *service) ListOnShelf(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListOnShelf(ctx)
}

func (s *service) ListHot(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListHot(ctx)
}

func (s *service) ListRelated(ctx context.Context, productID int64, limit int) ([]domain.Product, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRelated(ctx, p.Category.ID, p.ID, limit)
}

func (s *service) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id
	return p, nil
}

func (s *service) Update(ctx context.Context, p domain.Product) error {
	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListActiveCategories(ctx)
}

func (s *service) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	id, err := s.repo.CreateCategory(ctx, c)
	if err != nil {
		return domain.Category{}, err
	}
	c.ID = id
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, c domain.Category) error {
	return s.repo.UpdateCategory(ctx, c)
}

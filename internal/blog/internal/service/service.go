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

	"github.com/ecodeclub/greenshop/internal/blog/internal/domain"
	"github.com/ecodeclub/greenshop/internal/blog/internal/repository"
)

var ErrBlogNotFound = repository.ErrBlogNotFound

//go:generate mockgen -source=./service.go -package=blogmocks -destination=../../mocks/blog.mock.go Service
type Service interface {
	Create(ctx context.Context, b domain.Blog) (int64, error)
	Update(ctx context.Context, b domain.Blog) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Blog, error)
	List(ctx context.Context, offset, limit int) ([]domain.Blog, error)
	ListHot(ctx context.Context) ([]domain.Blog, error)
	ListBanner(ctx context.Context) ([]domain.Blog, error)
	Latest(ctx context.Context) ([]domain.Blog, error)
}

type service struct {
	repo repository.BlogRepository
}

func NewService(repo repository.BlogRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, b domain.Blog) (int64, error) {
	return s.repo.Create(ctx, b)
}

func (s *service) Update(ctx context.Context, b domain.Blog) error {
	return s.repo.Update(ctx, b)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Blog, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) ListHot(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.ListHot(ctx)
}

func (s *service) ListBanner(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.ListBanner(ctx)
}

func (s *service) Latest(ctx context.Context) ([]domain.Blog, error) {
	// 首页只取最近三篇
	const latestCount = 3
	return s.repo.Latest(ctx, latestCount)
}

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
	"github.com/ecodeclub/greenshop/internal/blog/internal/domain"
	"github.com/ecodeclub/greenshop/internal/blog/internal/repository/dao"
)

var ErrBlogNotFound = dao.ErrDataNotFound

type BlogRepository interface {
	Create(ctx context.Context, b domain.Blog) (int64, error)
	Update(ctx context.Context, b domain.Blog) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Blog, error)
	List(ctx context.Context, offset, limit int) ([]domain.Blog, error)
	ListHot(ctx context.Context) ([]domain.Blog, error)
	ListBanner(ctx context.Context) ([]domain.Blog, error)
	Latest(ctx context.Context, limit int) ([]domain.Blog, error)
}

type blogRepository struct {
	dao dao.BlogDAO
}

func NewBlogRepository(d dao.BlogDAO) BlogRepository {
	return &blogRepository{dao: d}
}

func (r *blogRepository) Create(ctx context.Context, b domain.Blog) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(b))
}

func (r *blogRepository) Update(ctx context.Context, b domain.Blog) error {
	return r.dao.Update(ctx, r.toEntity(b))
}

func (r *blogRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *blogRepository) FindByID(ctx context.Context, id int64) (domain.Blog, error) {
	b, err := r.dao.FindByID(ctx, id)
	return r.toDomain(b), err
}

func (r *blogRepository) List(ctx context.Context, offset, limit int) ([]domain.Blog, error) {
	bs, err := r.dao.List(ctx, offset, limit)
	return r.toDomains(bs), err
}

func (r *blogRepository) ListHot(ctx context.Context) ([]domain.Blog, error) {
	bs, err := r.dao.ListHot(ctx)
	return r.toDomains(bs), err
}

func (r *blogRepository) ListBanner(ctx context.Context) ([]domain.Blog, error) {
	bs, err := r.dao.ListBanner(ctx)
	return r.toDomains(bs), err
}

func (r *blogRepository) Latest(ctx context.Context, limit int) ([]domain.Blog, error) {
	bs, err := r.dao.Latest(ctx, limit)
	return r.toDomains(bs), err
}

func (r *blogRepository) toEntity(b domain.Blog) dao.Blog {
	return dao.Blog{
		ID:            b.ID,
		Title:         b.Title,
		Image:         b.Image,
		Content:       b.Content,
		DisplayHot:    b.DisplayHot,
		DisplayBanner: b.DisplayBanner,
	}
}

func (r *blogRepository) toDomain(b dao.Blog) domain.Blog {
	return domain.Blog{
		ID:            b.ID,
		Title:         b.Title,
		Image:         b.Image,
		Content:       b.Content,
		DisplayHot:    b.DisplayHot,
		DisplayBanner: b.DisplayBanner,
		Ctime:         b.Ctime,
		Utime:         b.Utime,
	}
}

func (r *blogRepository) toDomains(bs []dao.Blog) []domain.Blog {
	return slice.Map(bs, func(idx int, src dao.Blog) domain.Blog {
		return r.toDomain(src)
	})
}

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
	"github.com/ecodeclub/greenshop/internal/product/internal/domain"
	"github.com/ecodeclub/greenshop/internal/product/internal/repository/dao"
)

var (
	ErrProductNotFound = dao.ErrDataNotFound
	ErrDuplicateName   = dao.ErrDuplicateName
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListOnShelf(ctx context.Context) ([]domain.Product, error)
	ListHot(ctx context.Context) ([]domain.Product, error)
	ListRelated(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error

	FindCategoryByID(ctx context.Context, id int64) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListActiveCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (int64, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	res := r.toDomain(p)
	// 分类信息是冗余给前端展示用的，拿不到也不影响商品本身
	c, err := r.d.FindCategoryByID(ctx, p.CategoryId)
	if err == nil {
		res.Category.Name = c.Name
	}
	return res, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	ps, err := r.d.List(ctx)
	return r.toDomains(ps), err
}

func (r *productRepository) ListOnShelf(ctx context.Context) ([]domain.Product, error) {
	ps, err := r.d.ListOnShelf(ctx)
	return r.toDomains(ps), err
}

func (r *productRepository) ListHot(ctx context.Context) ([]domain.Product, error) {
	ps, err := r.d.ListHot(ctx)
	return r.toDomains(ps), err
}

func (r *productRepository) ListRelated(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Product, error) {
	ps, err := r.d.ListByCategory(ctx, categoryID, excludeID, limit)
	return r.toDomains(ps), err
}

func (r *productRepository) Create(ctx context.Context, p domain.Product) (int64, error) {
	return r.d.Insert(ctx, r.toEntity(p))
}

func (r *productRepository) Update(ctx context.Context, p domain.Product) error {
	return r.d.Update(ctx, r.toEntity(p))
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.d.Delete(ctx, id)
}

func (r *productRepository) FindCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	c, err := r.d.FindCategoryByID(ctx, id)
	return r.toCategoryDomain(c), err
}

func (r *productRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cs, err := r.d.ListCategories(ctx)
	return slice.Map(cs, func(idx int, src dao.Category) domain.Category {
		return r.toCategoryDomain(src)
	}), err
}

func (r *productRepository) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	cs, err := r.d.ListActiveCategories(ctx)
	return slice.Map(cs, func(idx int, src dao.Category) domain.Category {
		return r.toCategoryDomain(src)
	}), err
}

func (r *productRepository) CreateCategory(ctx context.Context, c domain.Category) (int64, error) {
	return r.d.InsertCategory(ctx, dao.Category{Id: c.ID, Name: c.Name, Active: c.Active})
}

func (r *productRepository) UpdateCategory(ctx context.Context, c domain.Category) error {
	return r.d.UpdateCategory(ctx, dao.Category{Id: c.ID, Name: c.Name, Active: c.Active})
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Price:       p.Price,
		SellPrice:   p.SellPrice,
		CategoryId:  p.Category.ID,
		DisplayType: p.DisplayType,
		DisplayHot:  p.DisplayHot,
	}
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:          p.Id,
		Name:        p.Name,
		Image:       p.Image,
		Price:       p.Price,
		SellPrice:   p.SellPrice,
		Category:    domain.Category{ID: p.CategoryId},
		DisplayType: p.DisplayType,
		DisplayHot:  p.DisplayHot,
		Ctime:       p.Ctime,
		Utime:       p.Utime,
	}
}

func (r *productRepository) toDomains(ps []dao.Product) []domain.Product {
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	})
}

func (r *productRepository) toCategoryDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:     c.Id,
		Name:   c.Name,
		Active: c.Active,
		Ctime:  c.Ctime,
		Utime:  c.Utime,
	}
}

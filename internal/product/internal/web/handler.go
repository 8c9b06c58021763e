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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/greenshop/internal/product/internal/domain"
	"github.com/ecodeclub/greenshop/internal/product/internal/errs"
	"github.com/ecodeclub/greenshop/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	duplicateResult = ginx.Result{
		Code: errs.DuplicateName.Code,
		Msg:  errs.DuplicateName.Msg,
	}
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 商城前台
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/detail", ginx.B[ProductReq](h.Detail))
	g.POST("/hot", ginx.W(h.ListHot))
	g.POST("/active", ginx.W(h.ListOnShelf))
	g.POST("/related", ginx.B[RelatedProductsReq](h.ListRelated))

	c := server.Group("/category")
	c.POST("/active", ginx.W(h.ListActiveCategories))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

// AdminRoutes 管理端，注册在角色校验中间件之后
func (h *Handler) AdminRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.W(h.List))
	g.POST("/create", ginx.B[SaveProductReq](h.Create))
	g.POST("/update", ginx.B[SaveProductReq](h.Update))
	g.POST("/delete", ginx.B[ProductReq](h.Delete))

	c := server.Group("/category")
	c.POST("/list", ginx.W(h.ListCategories))
	c.POST("/create", ginx.B[SaveCategoryReq](h.CreateCategory))
	c.POST("/update", ginx.B[SaveCategoryReq](h.UpdateCategory))
}

func (h *Handler) Detail(ctx *ginx.Context, req ProductReq) (ginx.Result, error) {
	p, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrProductNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(p)}, nil
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	ps, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(ps)}, nil
}

func (h *Handler) ListOnShelf(ctx *ginx.Context) (ginx.Result, error) {
	ps, err := h.svc.ListOnShelf(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(ps)}, nil
}

func (h *Handler) ListHot(ctx *ginx.Context) (ginx.Result, error) {
	ps, err := h.svc.ListHot(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(ps)}, nil
}

func (h *Handler) ListRelated(ctx *ginx.Context, req RelatedProductsReq) (ginx.Result, error) {
	const defaultLimit = 4
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	ps, err := h.svc.ListRelated(ctx.Request.Context(), req.ID, limit)
	if errors.Is(err, service.ErrProductNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(ps)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	if req.Name == "" || req.Image == "" || req.CategoryID == 0 {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg},
			errors.New("缺少商品必填字段")
	}
	p, err := h.svc.Create(ctx.Request.Context(), h.toDomain(req))
	if errors.Is(err, service.ErrDuplicateName) {
		return duplicateResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(p)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), h.toDomain(req))
	if errors.Is(err, service.ErrDuplicateName) {
		return duplicateResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ProductReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListCategories(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toCategoryResp(cs)}, nil
}

func (h *Handler) ListActiveCategories(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.ListActiveCategories(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toCategoryResp(cs)}, nil
}

func (h *Handler) CreateCategory(ctx *ginx.Context, req SaveCategoryReq) (ginx.Result, error) {
	c, err := h.svc.CreateCategory(ctx.Request.Context(), domain.Category{
		Name:   req.Name,
		Active: req.Active,
	})
	if errors.Is(err, service.ErrDuplicateName) {
		return duplicateResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Category{ID: c.ID, Name: c.Name, Active: c.Active}}, nil
}

func (h *Handler) UpdateCategory(ctx *ginx.Context, req SaveCategoryReq) (ginx.Result, error) {
	err := h.svc.UpdateCategory(ctx.Request.Context(), domain.Category{
		ID:     req.ID,
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(req SaveProductReq) domain.Product {
	return domain.Product{
		ID:          req.ID,
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		SellPrice:   req.SellPrice,
		Category:    domain.Category{ID: req.CategoryID},
		DisplayType: req.DisplayType,
		DisplayHot:  req.DisplayHot,
	}
}

func (h *Handler) toVO(p domain.Product) Product {
	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Price:        p.Price,
		SellPrice:    p.SellPrice,
		CategoryID:   p.Category.ID,
		CategoryName: p.Category.Name,
		DisplayType:  p.DisplayType,
		DisplayHot:   p.DisplayHot,
		Ctime:        p.Ctime,
	}
}

func (h *Handler) toListResp(ps []domain.Product) ProductListResp {
	return ProductListResp{
		Products: slice.Map(ps, func(idx int, src domain.Product) Product {
			return h.toVO(src)
		}),
	}
}

func (h *Handler) toCategoryResp(cs []domain.Category) CategoryListResp {
	return CategoryListResp{
		Categories: slice.Map(cs, func(idx int, src domain.Category) Category {
			return Category{ID: src.ID, Name: src.Name, Active: src.Active}
		}),
	}
}

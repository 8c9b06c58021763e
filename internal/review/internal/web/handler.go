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
	"github.com/ecodeclub/greenshop/internal/review/internal/domain"
	"github.com/ecodeclub/greenshop/internal/review/internal/errs"
	"github.com/ecodeclub/greenshop/internal/review/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	invalidRateResult = ginx.Result{
		Code: errs.InvalidRate.Code,
		Msg:  errs.InvalidRate.Msg,
	}
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/review")
	g.POST("/create", ginx.B[CreateReviewReq](h.Create))
	g.POST("/product", ginx.B[ProductReviewsReq](h.ListByProduct))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

// AdminRoutes 审核管理，注册在角色校验中间件之后
func (h *Handler) AdminRoutes(server *gin.Engine) {
	g := server.Group("/review")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/update", ginx.B[UpdateReviewReq](h.Update))
	g.POST("/delete", ginx.B[ReviewReq](h.Delete))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReviewReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Review{
		ProductID: req.ProductID,
		Name:      req.Name,
		Email:     req.Email,
		Content:   req.Content,
		Rate:      req.Rate,
	})
	if errors.Is(err, service.ErrInvalidRate) {
		return invalidRateResult, err
	}
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) ListByProduct(ctx *ginx.Context, req ProductReviewsReq) (ginx.Result, error) {
	rs, err := h.svc.ListActiveByProduct(ctx.Request.Context(), req.ProductID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(rs)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	const defaultLimit = 20
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	rs, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(rs)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateReviewReq) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), domain.Review{
		ID:      req.ID,
		Content: req.Content,
		Rate:    req.Rate,
		Active:  req.Active,
	})
	if errors.Is(err, service.ErrInvalidRate) {
		return invalidRateResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ReviewReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toListResp(rs []domain.Review) ReviewListResp {
	return ReviewListResp{
		Reviews: slice.Map(rs, func(idx int, src domain.Review) Review {
			return Review{
				ID:        src.ID,
				ProductID: src.ProductID,
				Name:      src.Name,
				Email:     src.Email,
				Content:   src.Content,
				Rate:      src.Rate,
				Active:    src.Active,
				Ctime:     src.Ctime,
			}
		}),
	}
}

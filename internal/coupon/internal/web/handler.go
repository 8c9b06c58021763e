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
	"github.com/ecodeclub/greenshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/greenshop/internal/coupon/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/usable", ginx.W(h.ListUsable))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

// AdminRoutes 管理端，注册在角色校验中间件之后
func (h *Handler) AdminRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/create", ginx.B[CreateCouponReq](h.Create))
	g.POST("/list", ginx.W(h.List))
	g.POST("/detail", ginx.B[CouponReq](h.Detail))
	g.POST("/update", ginx.B[UpdateCouponReq](h.Update))
	g.POST("/delete", ginx.B[CouponReq](h.Delete))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateCouponReq) (ginx.Result, error) {
	if req.Code == "" {
		return invalidInputResult, errors.New("优惠券代码为空")
	}
	c, err := h.svc.Create(ctx.Request.Context(), domain.Coupon{
		Code:          req.Code,
		DiscountValue: req.DiscountValue,
		MaxUsage:      req.MaxUsage,
	})
	if errors.Is(err, service.ErrCouponDuplicate) {
		return duplicateResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(c)}, nil
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(cs)}, nil
}

func (h *Handler) ListUsable(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.ListUsable(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(cs)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req CouponReq) (ginx.Result, error) {
	c, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrCouponNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(c)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateCouponReq) (ginx.Result, error) {
	if req.CurrentUsage < 0 || req.MaxUsage < 0 || req.CurrentUsage > req.MaxUsage {
		return invalidInputResult, errors.New("非法的使用次数")
	}
	err := h.svc.Update(ctx.Request.Context(), domain.Coupon{
		ID:            req.ID,
		Code:          req.Code,
		DiscountValue: req.DiscountValue,
		CurrentUsage:  req.CurrentUsage,
		MaxUsage:      req.MaxUsage,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req CouponReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toVO(c domain.Coupon) Coupon {
	return Coupon{
		ID:            c.ID,
		Code:          c.Code,
		DiscountValue: c.DiscountValue,
		CurrentUsage:  c.CurrentUsage,
		MaxUsage:      c.MaxUsage,
		Ctime:         c.Ctime,
	}
}

func (h *Handler) toListResp(cs []domain.Coupon) CouponListResp {
	return CouponListResp{
		Coupons: slice.Map(cs, func(idx int, src domain.Coupon) Coupon {
			return h.toVO(src)
		}),
	}
}

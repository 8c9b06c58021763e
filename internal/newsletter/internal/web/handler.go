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
	"github.com/ecodeclub/greenshop/internal/newsletter/internal/domain"
	"github.com/ecodeclub/greenshop/internal/newsletter/internal/errs"
	"github.com/ecodeclub/greenshop/internal/newsletter/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
)

type SubscribeReq struct {
	Email    string `json:"email"`
	CouponID int64  `json:"couponId"`
	Consent  bool   `json:"consent"`
}

type UpdateSubscriptionReq struct {
	ID       int64 `json:"id"`
	CouponID int64 `json:"couponId"`
	Consent  bool  `json:"consent"`
	Done     bool  `json:"done"`
}

type SubscriptionReq struct {
	ID int64 `json:"id"`
}

type Subscription struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	CouponID int64  `json:"couponId"`
	Consent  bool   `json:"consent"`
	Done     bool   `json:"done"`
	Ctime    int64  `json:"ctime"`
}

type SubscriptionListResp struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/newsletter")
	g.POST("/subscribe", ginx.B[SubscribeReq](h.Subscribe))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

// AdminRoutes 管理端，注册在角色校验中间件之后
func (h *Handler) AdminRoutes(server *gin.Engine) {
	g := server.Group("/newsletter")
	g.POST("/pending", ginx.W(h.ListPending))
	g.POST("/update", ginx.B[UpdateSubscriptionReq](h.Update))
	g.POST("/delete", ginx.B[SubscriptionReq](h.Delete))
}

func (h *Handler) Subscribe(ctx *ginx.Context, req SubscribeReq) (ginx.Result, error) {
	if req.Email == "" {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg},
			errors.New("订阅邮箱为空")
	}
	id, err := h.svc.Subscribe(ctx.Request.Context(), domain.Subscription{
		Email:    req.Email,
		CouponID: req.CouponID,
		Consent:  req.Consent,
	})
	if errors.Is(err, service.ErrDuplicateEmail) {
		return duplicateEmailResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) ListPending(ctx *ginx.Context) (ginx.Result, error) {
	ss, err := h.svc.ListPending(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SubscriptionListResp{
			Subscriptions: slice.Map(ss, func(idx int, src domain.Subscription) Subscription {
				return Subscription{
					ID:       src.ID,
					Email:    src.Email,
					CouponID: src.CouponID,
					Consent:  src.Consent,
					Done:     src.Done,
					Ctime:    src.Ctime,
				}
			}),
		},
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateSubscriptionReq) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), domain.Subscription{
		ID:       req.ID,
		CouponID: req.CouponID,
		Consent:  req.Consent,
		Done:     req.Done,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req SubscriptionReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

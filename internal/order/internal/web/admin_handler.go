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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/greenshop/internal/order/internal/domain"
	"github.com/ecodeclub/greenshop/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 后台只展示已支付订单，并允许修改联系信息
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) AdminRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/paid/list", ginx.B[ListReq](h.ListPaid))
	g.POST("/update", ginx.B[UpdateOrderReq](h.Update))
}

func (h *AdminHandler) ListPaid(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	const defaultLimit = 20
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	os, err := h.svc.ListPaidOrders(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toListResp(os)}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateOrderReq) (ginx.Result, error) {
	err := h.svc.UpdateContact(ctx.Request.Context(), domain.Order{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Number,
		Email:   req.Email,
		Note:    req.Note,
	})
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

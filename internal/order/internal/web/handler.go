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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/greenshop/internal/order/internal/domain"
	"github.com/ecodeclub/greenshop/internal/order/internal/service"
	"github.com/ecodeclub/greenshop/internal/pkg/sequencenumber"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

// PaymentURLBuilder 由支付模块实现，负责把订单变成网关跳转链接。
type PaymentURLBuilder interface {
	BuildPaymentURL(ctx context.Context, orderSN string, amount int64, orderInfo string, clientIP string) (string, error)
}

type Handler struct {
	svc         service.Service
	urlBuilder  PaymentURLBuilder
	snGenerator *sequencenumber.Generator
	cache       ecache.Cache
	logger      *elog.Component
}

func NewHandler(svc service.Service,
	urlBuilder PaymentURLBuilder,
	snGenerator *sequencenumber.Generator,
	cache ecache.Cache,
) *Handler {
	return &Handler{
		svc:         svc,
		urlBuilder:  urlBuilder,
		snGenerator: snGenerator,
		cache:       cache,
		logger:      elog.DefaultLogger,
	}
}

// PublicRoutes 下单不要求登录，带凭证则关联买家
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.B[CreateOrderReq](h.Create))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.BS[ListReq](h.ListMine))
	g.POST("/detail", ginx.BS[OrderSNReq](h.Detail))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateOrderReq) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, err
	}

	// 登录是可选的，凭证有效就把订单挂到买家名下
	var buyerID int64
	if sess, err := session.Get(ctx); err == nil {
		buyerID = sess.Claims().Uid
	}

	sn, err := h.snGenerator.Generate(buyerID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("生成订单序列号失败: %w", err)
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.Order{
		SN:            sn,
		BuyerID:       buyerID,
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Number,
		Email:         req.Email,
		Note:          req.Note,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    req.CouponCode,
		Discount:      req.Discount,
		FinalPrice:    req.FinalPrice,
		Items: slice.Map(req.Cart, func(idx int, src CartItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID: src.ProductID,
				Quantity:  src.Quantity,
				UnitPrice: src.Price,
			}
		}),
	})
	switch {
	case errors.Is(err, service.ErrInvalidOrder):
		return invalidInputResult, err
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, err
	case errors.Is(err, service.ErrCouponNotFound):
		return couponNotFoundResult, err
	case errors.Is(err, service.ErrCouponExhausted):
		return couponExhaustedResult, err
	case errors.Is(err, service.ErrPriceMismatch):
		return priceMismatchResult, err
	case err != nil:
		return systemErrorResult, err
	}

	if order.PaymentMethod == domain.PaymentMethodVNPay {
		orderInfo := fmt.Sprintf("Thanh toan don hang %s", order.SN)
		url, uerr := h.urlBuilder.BuildPaymentURL(ctx.Request.Context(),
			order.SN, order.FinalPrice, orderInfo, ctx.ClientIP())
		if uerr != nil {
			return systemErrorResult, fmt.Errorf("构造支付链接失败: %w", uerr)
		}
		return ginx.Result{Data: CreateOrderResp{PaymentURL: url}}, nil
	}
	return ginx.Result{Data: toVO(order)}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	const defaultLimit = 20
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	os, err := h.svc.ListByBuyerID(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toListResp(os)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.FindBySNAndBuyerID(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toVO(o)}, nil
}

// requestIDExpiration 去重窗口，超过之后同一个 requestId 可以重新下单
const requestIDExpiration = 5 * time.Minute

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return nil
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	ok, err := h.cache.SetNX(ctx, key, requestID, requestIDExpiration)
	if err != nil {
		// 去重是尽力而为，缓存故障不能拦住下单
		h.logger.Warn("下单去重缓存不可用", elog.FieldErr(err))
		return nil
	}
	if !ok {
		return fmt.Errorf("重复请求")
	}
	return nil
}

func toVO(o domain.Order) Order {
	return Order{
		ID:            o.ID,
		SN:            o.SN,
		Name:          o.Name,
		Address:       o.Address,
		Number:        o.Phone,
		Email:         o.Email,
		Note:          o.Note,
		PaymentMethod: o.PaymentMethod,
		CouponCode:    o.CouponCode,
		Discount:      o.Discount,
		FinalPrice:    o.FinalPrice,
		Status:        o.Status.ToUint8(),
		PaidAmount:    o.PaidAmount,
		Cart: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID:    src.ProductID,
				ProductName:  src.ProductName,
				ProductPrice: src.ProductPrice,
				Quantity:     src.Quantity,
				Price:        src.UnitPrice,
				TotalPrice:   src.TotalPrice,
			}
		}),
		Ctime: o.Ctime,
	}
}

func toListResp(os []domain.Order) OrderListResp {
	return OrderListResp{
		Orders: slice.Map(os, func(idx int, src domain.Order) Order {
			return toVO(src)
		}),
	}
}

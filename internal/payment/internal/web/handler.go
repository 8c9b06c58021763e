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
	"net/http"
	"net/url"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/greenshop/internal/order"
	"github.com/ecodeclub/greenshop/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

// Handler 承接网关的支付结果回调。回调是网关重定向终端用户发起的,
// 所以业务性的失败用页面跳转回应，只有签名、参数层面的问题才返回 JSON。
type Handler struct {
	svc      service.Service
	orderSvc order.Service
	cfg      service.Config
	logger   *elog.Component
}

func NewHandler(svc service.Service, orderSvc order.Service, cfg service.Config) *Handler {
	return &Handler{
		svc:      svc,
		orderSvc: orderSvc,
		cfg:      cfg,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/order/payment/callback", h.Callback)
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Callback(ctx *gin.Context) {
	params := make(map[string]string)
	for k, vs := range ctx.Request.URL.Query() {
		if len(vs) > 0 {
			params[k] = vs[0]
		}
	}

	if err := h.svc.VerifyCallback(params); err != nil {
		h.logger.Warn("支付回调签名校验失败", elog.FieldErr(err))
		ctx.JSON(http.StatusBadRequest, invalidSignatureResult)
		return
	}

	sn := params["vnp_TxnRef"]
	if sn == "" {
		ctx.JSON(http.StatusNotFound, orderNotFoundResult)
		return
	}

	if params["vnp_ResponseCode"] != "00" {
		h.redirectFail(ctx, sn)
		return
	}

	// 金额以 VND x100 传输
	amount, err := strconv.ParseInt(params["vnp_Amount"], 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, invalidCallbackResult)
		return
	}

	err = h.orderSvc.MarkPaidBySN(ctx.Request.Context(), sn, amount/100, params["vnp_BankCode"])
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, orderNotFoundResult)
	case errors.Is(err, order.ErrOrderNotPayable):
		h.redirectFail(ctx, sn)
	case err != nil:
		h.logger.Error("支付回调落账失败",
			elog.String("sn", sn),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	default:
		ctx.Redirect(http.StatusFound, h.cfg.SuccessURL+"?sn="+url.QueryEscape(sn))
	}
}

func (h *Handler) redirectFail(ctx *gin.Context, sn string) {
	ctx.Redirect(http.StatusFound, h.cfg.FailURL+"?sn="+url.QueryEscape(sn))
}

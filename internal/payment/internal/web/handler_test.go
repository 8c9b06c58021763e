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
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/ecodeclub/greenshop/internal/order"
	ordermocks "github.com/ecodeclub/greenshop/internal/order/mocks"
	"github.com/ecodeclub/greenshop/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testSecret = "secret-key-123"

func signParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	h := hmac.New(sha512.New, []byte(testSecret))
	h.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(h.Sum(nil))
}

func callbackQuery(mutate func(map[string]string)) string {
	params := map[string]string{
		"vnp_Amount":       "15000000",
		"vnp_BankCode":     "NCB",
		"vnp_ResponseCode": "00",
		"vnp_TxnRef":       "OR20240115001",
	}
	if mutate != nil {
		mutate(params)
	}
	params["vnp_SecureHash"] = signParams(params)
	vals := url.Values{}
	for k, v := range params {
		vals.Set(k, v)
	}
	return vals.Encode()
}

func newCallbackServer(t *testing.T, mock func(svc *ordermocks.MockService)) *gin.Engine {
	t.Helper()
	ctrl := gomock.NewController(t)
	orderSvc := ordermocks.NewMockService(ctrl)
	if mock != nil {
		mock(orderSvc)
	}
	cfg := service.Config{
		HashSecret: testSecret,
		SuccessURL: "https://shop.example.com/checkout/success",
		FailURL:    "https://shop.example.com/checkout/fail",
	}
	hdl := NewHandler(service.NewVNPayService(cfg), orderSvc, cfg)
	server := gin.Default()
	hdl.PublicRoutes(server)
	return server
}

func doCallback(server *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/order/payment/callback?"+query, nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_Callback(t *testing.T) {
	t.Run("支付成功跳转成功页", func(t *testing.T) {
		server := newCallbackServer(t, func(svc *ordermocks.MockService) {
			svc.EXPECT().MarkPaidBySN(gomock.Any(), "OR20240115001", int64(150000), "NCB").
				Return(nil)
		})
		recorder := doCallback(server, callbackQuery(nil))
		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "https://shop.example.com/checkout/success?sn=OR20240115001",
			recorder.Header().Get("Location"))
	})

	t.Run("重复回调同样跳转成功页", func(t *testing.T) {
		server := newCallbackServer(t, func(svc *ordermocks.MockService) {
			svc.EXPECT().MarkPaidBySN(gomock.Any(), "OR20240115001", int64(150000), "NCB").
				Return(nil).Times(2)
		})
		query := callbackQuery(nil)
		first := doCallback(server, query)
		second := doCallback(server, query)
		assert.Equal(t, http.StatusFound, first.Code)
		assert.Equal(t, http.StatusFound, second.Code)
		assert.Equal(t, first.Header().Get("Location"), second.Header().Get("Location"))
	})

	t.Run("参数被篡改返回400且不触碰订单", func(t *testing.T) {
		server := newCallbackServer(t, nil)
		query := callbackQuery(nil)
		tampered := strings.Replace(query, "vnp_Amount=15000000", "vnp_Amount=15000001", 1)
		recorder := doCallback(server, tampered)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("网关返回失败码跳转失败页", func(t *testing.T) {
		server := newCallbackServer(t, nil)
		recorder := doCallback(server, callbackQuery(func(p map[string]string) {
			p["vnp_ResponseCode"] = "24"
		}))
		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "https://shop.example.com/checkout/fail?sn=OR20240115001",
			recorder.Header().Get("Location"))
	})

	t.Run("订单不存在返回404", func(t *testing.T) {
		server := newCallbackServer(t, func(svc *ordermocks.MockService) {
			svc.EXPECT().MarkPaidBySN(gomock.Any(), "OR20240115001", int64(150000), "NCB").
				Return(order.ErrOrderNotFound)
		})
		recorder := doCallback(server, callbackQuery(nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("订单已关闭跳转失败页", func(t *testing.T) {
		server := newCallbackServer(t, func(svc *ordermocks.MockService) {
			svc.EXPECT().MarkPaidBySN(gomock.Any(), "OR20240115001", int64(150000), "NCB").
				Return(order.ErrOrderNotPayable)
		})
		recorder := doCallback(server, callbackQuery(nil))
		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "https://shop.example.com/checkout/fail?sn=OR20240115001",
			recorder.Header().Get("Location"))
	})

	t.Run("金额非法返回400", func(t *testing.T) {
		server := newCallbackServer(t, nil)
		recorder := doCallback(server, callbackQuery(func(p map[string]string) {
			p["vnp_Amount"] = "abc"
		}))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

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

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		TmnCode:    "GREENSHOP",
		HashSecret: "secret-key-123",
		GatewayURL: "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "https://shop.example.com/order/payment/callback",
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
}

// 期望值是用独立实现预先算好的，锁死签名串的拼接规则
const wantPaymentURL = "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?" +
	"vnp_Amount=15000000&vnp_Command=pay&vnp_CreateDate=20240115103000&vnp_CurrCode=VND" +
	"&vnp_ExpireDate=20240115104500&vnp_IpAddr=113.160.92.202&vnp_Locale=vn" +
	"&vnp_OrderInfo=Thanh+toan+don+hang+OR20240115001&vnp_OrderType=other" +
	"&vnp_ReturnUrl=https%3A%2F%2Fshop.example.com%2Forder%2Fpayment%2Fcallback" +
	"&vnp_TmnCode=GREENSHOP&vnp_TxnRef=OR20240115001&vnp_Version=2.1.0" +
	"&vnp_SecureHash=89bd0fbfbf798f47be25009f5a3917f40156787201744b6921f5ae9db1ccca9e" +
	"ec3288eff71becc0d2fa8636e3426a26e2eb89ed250e82321870fc79a5d641c2"

func TestVNPayService_BuildPaymentURL(t *testing.T) {
	svc := NewVNPayServiceWith(testConfig(), fixedNow)
	got, err := svc.BuildPaymentURL(context.Background(),
		"OR20240115001", 150000, "Thanh toan don hang OR20240115001", "113.160.92.202")
	require.NoError(t, err)
	assert.Equal(t, wantPaymentURL, got)
}

func callbackParams() map[string]string {
	return map[string]string{
		"vnp_Amount":            "15000000",
		"vnp_BankCode":          "NCB",
		"vnp_OrderInfo":         "Thanh toan don hang OR20240115001",
		"vnp_PayDate":           "20240115103500",
		"vnp_ResponseCode":      "00",
		"vnp_TmnCode":           "GREENSHOP",
		"vnp_TransactionNo":     "14226112",
		"vnp_TransactionStatus": "00",
		"vnp_TxnRef":            "OR20240115001",
		"vnp_SecureHash": "028b464f5c55cdb779295c35344abff1854a76a2a321f8d284ae26d2a6f01a53" +
			"0dbfe866b1a127fda7933e49f2697ad3895ece14e738ce43422dc6d06648df4f",
	}
}

func TestVNPayService_VerifyCallback(t *testing.T) {
	testCases := []struct {
		name    string
		params  func() map[string]string
		wantErr error
	}{
		{
			name:   "签名正确",
			params: callbackParams,
		},
		{
			name: "非vnp参数不参与签名",
			params: func() map[string]string {
				p := callbackParams()
				p["utm_source"] = "email"
				return p
			},
		},
		{
			name: "参数被篡改",
			params: func() map[string]string {
				p := callbackParams()
				p["vnp_Amount"] = "15000001"
				return p
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "签名被篡改",
			params: func() map[string]string {
				p := callbackParams()
				p["vnp_SecureHash"] = "deadbeef" + p["vnp_SecureHash"][8:]
				return p
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "缺少签名",
			params: func() map[string]string {
				p := callbackParams()
				delete(p, "vnp_SecureHash")
				return p
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "密钥不同",
			params: func() map[string]string {
				return callbackParams()
			},
			wantErr: ErrInvalidSignature,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			if tc.name == "密钥不同" {
				cfg.HashSecret = "another-secret"
			}
			svc := NewVNPayServiceWith(cfg, fixedNow)
			err := svc.VerifyCallback(tc.params())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVNPayService_SignRoundTrip(t *testing.T) {
	svc := NewVNPayServiceWith(testConfig(), fixedNow).(*vnpayService)
	params := map[string]string{
		"vnp_Amount":       "5000000",
		"vnp_ResponseCode": "00",
		"vnp_TxnRef":       "OR999",
	}
	params["vnp_SecureHash"] = svc.sign(canonicalize(params, false))
	assert.NoError(t, svc.VerifyCallback(params))
}

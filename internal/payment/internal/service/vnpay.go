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
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -source=./vnpay.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service

var ErrInvalidSignature = errors.New("签名校验失败")

const (
	version   = "2.1.0"
	command   = "pay"
	currCode  = "VND"
	locale    = "vn"
	orderType = "other"
	// 支付链接 15 分钟内有效
	expireIn = 15 * time.Minute

	timeLayout = "20060102150405"
)

type Config struct {
	TmnCode    string `yaml:"tmnCode"`
	HashSecret string `yaml:"hashSecret"`
	GatewayURL string `yaml:"gatewayURL"`
	ReturnURL  string `yaml:"returnURL"`
	SuccessURL string `yaml:"successURL"`
	FailURL    string `yaml:"failURL"`
}

type Service interface {
	BuildPaymentURL(ctx context.Context, orderSN string, amount int64, orderInfo string, clientIP string) (string, error)
	// VerifyCallback 只校验签名，业务字段由调用方自行解析
	VerifyCallback(params map[string]string) error
}

type vnpayService struct {
	cfg Config
	now func() time.Time
}

func NewVNPayService(cfg Config) Service {
	return NewVNPayServiceWith(cfg, time.Now)
}

func NewVNPayServiceWith(cfg Config, now func() time.Time) Service {
	return &vnpayService{cfg: cfg, now: now}
}

func (s *vnpayService) BuildPaymentURL(_ context.Context, orderSN string, amount int64, orderInfo string, clientIP string) (string, error) {
	createAt := s.now()
	params := map[string]string{
		"vnp_Amount":     strconv.FormatInt(amount*100, 10),
		"vnp_Command":    command,
		"vnp_CreateDate": createAt.Format(timeLayout),
		"vnp_CurrCode":   currCode,
		"vnp_ExpireDate": createAt.Add(expireIn).Format(timeLayout),
		"vnp_IpAddr":     clientIP,
		"vnp_Locale":     locale,
		"vnp_OrderInfo":  orderInfo,
		"vnp_OrderType":  orderType,
		"vnp_ReturnUrl":  s.cfg.ReturnURL,
		"vnp_TmnCode":    s.cfg.TmnCode,
		"vnp_TxnRef":     orderSN,
		"vnp_Version":    version,
	}
	// 网关要求按参数名升序、值经 URL 编码后拼接再签名
	query := canonicalize(params, true)
	return s.cfg.GatewayURL + "?" + query + "&vnp_SecureHash=" + s.sign(query), nil
}

func (s *vnpayService) VerifyCallback(params map[string]string) error {
	got, ok := params["vnp_SecureHash"]
	if !ok || got == "" {
		return ErrInvalidSignature
	}
	data := make(map[string]string, len(params))
	for k, v := range params {
		// 只有 vnp_ 前缀的参数参与签名
		if !strings.HasPrefix(k, "vnp_") {
			continue
		}
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" {
			continue
		}
		data[k] = v
	}
	// 回调方向的签名串不做 URL 编码，与请求方向不对称，属于网关的既定契约
	want := s.sign(canonicalize(data, false))
	if !hmac.Equal([]byte(want), []byte(got)) {
		return ErrInvalidSignature
	}
	return nil
}

func (s *vnpayService) sign(data string) string {
	h := hmac.New(sha512.New, []byte(s.cfg.HashSecret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func canonicalize(params map[string]string, encode bool) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := params[k]
		if encode {
			v = url.QueryEscape(v)
		}
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, "&")
}

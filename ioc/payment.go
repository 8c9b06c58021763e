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

package ioc

import (
	"github.com/ecodeclub/greenshop/internal/order"
	"github.com/ecodeclub/greenshop/internal/payment"
	"github.com/gotomicro/ego/core/econf"
)

func initPaymentConfig() payment.Config {
	var cfg payment.Config
	err := econf.UnmarshalKey("vnpay", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initPaymentService(cfg payment.Config) payment.Service {
	return payment.InitService(cfg)
}

// 订单模块不直接依赖支付模块，只依赖支付链接的构造能力
func initPaymentURLBuilder(svc payment.Service) order.PaymentURLBuilder {
	return svc
}

func initPaymentModule(svc payment.Service, orderModule *order.Module, cfg payment.Config) *payment.Module {
	return payment.InitModule(svc, orderModule.Svc, cfg)
}

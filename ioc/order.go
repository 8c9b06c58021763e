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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/greenshop/internal/coupon"
	"github.com/ecodeclub/greenshop/internal/email"
	"github.com/ecodeclub/greenshop/internal/order"
	"github.com/ecodeclub/greenshop/internal/product"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func initOrderModule(db *egorm.Component,
	q mq.MQ,
	ec ecache.Cache,
	emailSvc email.Service,
	productModule *product.Module,
	couponModule *coupon.Module,
	urlBuilder order.PaymentURLBuilder) *order.Module {
	m, err := order.InitModule(db, q, ec, emailSvc, emailFrom(), productModule.Svc, couponModule.Svc, urlBuilder)
	if err != nil {
		panic(err)
	}
	return m
}

func initCloseExpiredJob(orderModule *order.Module) *order.CloseExpiredJob {
	type Config struct {
		Limit   int   `yaml:"limit"`
		Minute  int64 `yaml:"minute"`
		Timeout int   `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("order.closeExpired", &cfg)
	if err != nil {
		panic(err)
	}
	return order.NewCloseExpiredJob(orderModule.Svc, cfg.Limit, cfg.Minute,
		time.Duration(cfg.Timeout)*time.Second)
}

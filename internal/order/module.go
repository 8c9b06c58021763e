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

package order

import (
	"github.com/ecodeclub/greenshop/internal/order/internal/domain"
	"github.com/ecodeclub/greenshop/internal/order/internal/event"
	"github.com/ecodeclub/greenshop/internal/order/internal/job"
	"github.com/ecodeclub/greenshop/internal/order/internal/service"
	"github.com/ecodeclub/greenshop/internal/order/internal/web"
)

type (
	Handler              = web.Handler
	AdminHandler         = web.AdminHandler
	PaymentURLBuilder    = web.PaymentURLBuilder
	Order                = domain.Order
	OrderItem            = domain.OrderItem
	Service              = service.Service
	InvoiceEmailConsumer = event.InvoiceEmailConsumer
	CloseExpiredJob      = job.CloseExpiredOrdersJob
)

const (
	StatusPending = domain.StatusPending
	StatusPaid    = domain.StatusPaid
	StatusExpired = domain.StatusExpired

	PaymentMethodCash  = domain.PaymentMethodCash
	PaymentMethodVNPay = domain.PaymentMethodVNPay
)

var (
	ErrOrderNotFound   = service.ErrOrderNotFound
	ErrOrderNotPayable = service.ErrOrderNotPayable

	NewCloseExpiredJob = job.NewCloseExpiredOrdersJob
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	Consumer *InvoiceEmailConsumer
}

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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/greenshop/internal/email"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// InvoiceEmailConsumer 消费收款事件并发送收据邮件。
// 发送失败只记录日志，收据属于尽力而为。
type InvoiceEmailConsumer struct {
	emailSvc email.Service
	consumer mq.Consumer
	from     string
	logger   *elog.Component
}

func NewInvoiceEmailConsumer(emailSvc email.Service, q mq.MQ, from string) (*InvoiceEmailConsumer, error) {
	const groupID = "order"
	consumer, err := q.Consumer(InvoiceEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &InvoiceEmailConsumer{
		emailSvc: emailSvc,
		consumer: consumer,
		from:     from,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *InvoiceEmailConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("发送收据邮件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *InvoiceEmailConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt InvoiceEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	body, err := email.Invoice{
		OrderSN:       evt.OrderSN,
		Name:          evt.Name,
		PaymentMethod: evt.PaymentMethod,
		Discount:      evt.Discount,
		Total:         evt.FinalPrice,
		Lines: slice.Map(evt.Items, func(idx int, src InvoiceItem) email.InvoiceLine {
			return email.InvoiceLine{
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				TotalPrice:  src.TotalPrice,
			}
		}),
	}.Render()
	if err != nil {
		return fmt.Errorf("渲染收据失败: %w", err)
	}
	return c.emailSvc.SendMail(ctx, email.Mail{
		From:    c.from,
		To:      evt.Email,
		Subject: fmt.Sprintf("Hóa đơn cho đơn hàng %s", evt.OrderSN),
		Body:    body,
	})
}

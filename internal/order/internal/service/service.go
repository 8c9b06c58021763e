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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/greenshop/internal/coupon"
	"github.com/ecodeclub/greenshop/internal/order/internal/domain"
	"github.com/ecodeclub/greenshop/internal/order/internal/event"
	"github.com/ecodeclub/greenshop/internal/order/internal/repository"
	"github.com/ecodeclub/greenshop/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound   = repository.ErrOrderNotFound
	ErrProductNotFound = product.ErrProductNotFound
	ErrCouponNotFound  = coupon.ErrCouponNotFound
	ErrCouponExhausted = coupon.ErrCouponExhausted
	// ErrInvalidOrder 缺少必填字段或者订单项非法
	ErrInvalidOrder = errors.New("订单缺少必填字段")
	// ErrPriceMismatch 实付金额与订单项小计对不上
	ErrPriceMismatch = errors.New("订单金额校验不通过")
	// ErrOrderNotPayable 订单已经超时关闭，不再接受回调
	ErrOrderNotPayable = errors.New("订单已经不可支付")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// CreateOrder 校验并落库订单。
	// 网关单以 pending 状态入库，现金单直接 paid 并发出收据事件。
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	ListPaidOrders(ctx context.Context, offset, limit int) ([]domain.Order, error)
	UpdateContact(ctx context.Context, order domain.Order) error
	// MarkPaidBySN 是回调路径的终态转换，pending 到 paid 只会生效一次。
	// 对已经 paid 的订单重复调用返回 nil，不会再发收据事件。
	MarkPaidBySN(ctx context.Context, sn string, paidAmount int64, bankCode string) error
	ListExpiredOrders(ctx context.Context, offset, limit int, deadline int64) ([]domain.Order, int64, error)
	CloseExpiredOrders(ctx context.Context, ids []int64) error
}

type service struct {
	repo       repository.OrderRepository
	productSvc product.Service
	couponSvc  coupon.Service
	producer   event.InvoiceEventProducer
	logger     *elog.Component
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	couponSvc coupon.Service,
	producer event.InvoiceEventProducer,
) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		couponSvc:  couponSvc,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := s.validate(order); err != nil {
		return domain.Order{}, err
	}

	items, err := s.resolveItems(ctx, order.Items)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items

	if order.FinalPrice != order.ItemsTotal()-order.Discount {
		return domain.Order{}, ErrPriceMismatch
	}

	// 优惠券先扣减，订单落库失败再补偿回来
	redeemed := false
	if order.CouponCode != "" {
		_, err = s.couponSvc.Redeem(ctx, order.CouponCode)
		if err != nil {
			return domain.Order{}, err
		}
		redeemed = true
	}

	if order.PaymentMethod == domain.PaymentMethodVNPay {
		order.Status = domain.StatusPending
	} else {
		order.Status = domain.StatusPaid
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if redeemed {
			if re := s.couponSvc.Release(ctx, order.CouponCode); re != nil {
				s.logger.Error("回滚优惠券使用次数失败",
					elog.FieldErr(re),
					elog.String("coupon_code", order.CouponCode),
				)
			}
		}
		return domain.Order{}, err
	}

	if created.Status == domain.StatusPaid {
		s.produceInvoice(ctx, created)
	}
	return created, nil
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	return s.repo.FindBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	return s.repo.ListByBuyerID(ctx, buyerID, offset, limit)
}

func (s *service) ListPaidOrders(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	return s.repo.ListByStatus(ctx, domain.StatusPaid, offset, limit)
}

func (s *service) UpdateContact(ctx context.Context, order domain.Order) error {
	return s.repo.UpdateContact(ctx, order)
}

func (s *service) MarkPaidBySN(ctx context.Context, sn string, paidAmount int64, bankCode string) error {
	flipped, err := s.repo.MarkPaidBySN(ctx, sn, paidAmount, bankCode)
	if err != nil {
		return err
	}
	if flipped {
		order, ferr := s.repo.FindBySN(ctx, sn)
		if ferr != nil {
			// 状态已经转换成功，查不回来只影响收据
			s.logger.Error("回查已支付订单失败",
				elog.FieldErr(ferr),
				elog.String("order_sn", sn),
			)
			return nil
		}
		s.produceInvoice(ctx, order)
		return nil
	}
	order, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if order.Status == domain.StatusPaid {
		// 网关重复回调，终态不变
		return nil
	}
	return ErrOrderNotPayable
}

func (s *service) ListExpiredOrders(ctx context.Context, offset, limit int, deadline int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListExpiredPending(ctx, deadline, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalExpiredPending(ctx, deadline)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CloseExpiredOrders(ctx context.Context, ids []int64) error {
	return s.repo.CloseExpired(ctx, ids)
}

func (s *service) validate(order domain.Order) error {
	if order.Name == "" || order.Address == "" || order.Phone == "" ||
		order.Email == "" || order.PaymentMethod == "" || len(order.Items) == 0 {
		return ErrInvalidOrder
	}
	if order.Discount < 0 || order.FinalPrice < 0 {
		return ErrPriceMismatch
	}
	for _, it := range order.Items {
		if it.Quantity <= 0 {
			return ErrInvalidOrder
		}
	}
	return nil
}

// resolveItems 逐个解析商品，任何一个不存在则整单失败。
// 小计用调用方传入的单价计算，同时快照商品的名称和目录价。
func (s *service) resolveItems(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	out := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		p, err := s.productSvc.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		it.ProductName = p.Name
		it.ProductPrice = p.SellPrice
		it.TotalPrice = it.Quantity * it.UnitPrice
		out = append(out, it)
	}
	return out, nil
}

func (s *service) produceInvoice(ctx context.Context, order domain.Order) {
	evt := event.InvoiceEvent{
		OrderSN:       order.SN,
		Name:          order.Name,
		Email:         order.Email,
		PaymentMethod: order.PaymentMethod,
		Discount:      order.Discount,
		FinalPrice:    order.FinalPrice,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) event.InvoiceItem {
			return event.InvoiceItem{
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				TotalPrice:  src.TotalPrice,
			}
		}),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送收据事件失败",
			elog.FieldErr(err),
			elog.String("order_sn", order.SN),
		)
	}
}

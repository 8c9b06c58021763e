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
	"testing"

	"github.com/ecodeclub/greenshop/internal/coupon"
	couponmocks "github.com/ecodeclub/greenshop/internal/coupon/mocks"
	"github.com/ecodeclub/greenshop/internal/order/internal/domain"
	"github.com/ecodeclub/greenshop/internal/order/internal/event"
	"github.com/ecodeclub/greenshop/internal/order/internal/repository"
	"github.com/ecodeclub/greenshop/internal/product"
	productmocks "github.com/ecodeclub/greenshop/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryRepository 复刻了 DAO 的条件更新语义，方便测试终态转换只生效一次
type memoryRepository struct {
	repository.OrderRepository
	orders    map[string]*domain.Order
	nextID    int64
	createErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{orders: make(map[string]*domain.Order)}
}

func (m *memoryRepository) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	if m.createErr != nil {
		return domain.Order{}, m.createErr
	}
	m.nextID++
	order.ID = m.nextID
	m.orders[order.SN] = &order
	return order, nil
}

func (m *memoryRepository) FindBySN(_ context.Context, sn string) (domain.Order, error) {
	o, ok := m.orders[sn]
	if !ok {
		return domain.Order{}, repository.ErrOrderNotFound
	}
	return *o, nil
}

func (m *memoryRepository) MarkPaidBySN(_ context.Context, sn string, paidAmount int64, bankCode string) (bool, error) {
	o, ok := m.orders[sn]
	if !ok || o.Status != domain.StatusPending {
		return false, nil
	}
	o.Status = domain.StatusPaid
	o.PaidAmount = paidAmount
	o.BankCode = bankCode
	return true, nil
}

type recordingProducer struct {
	events []event.InvoiceEvent
}

func (p *recordingProducer) Produce(_ context.Context, evt event.InvoiceEvent) error {
	p.events = append(p.events, evt)
	return nil
}

func validOrder() domain.Order {
	return domain.Order{
		SN:            "OR123",
		Name:          "Nguyen Van A",
		Address:       "Ha Noi",
		Phone:         "0912345678",
		Email:         "a@example.com",
		PaymentMethod: domain.PaymentMethodCash,
		FinalPrice:    100000,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 50000},
		},
	}
}

func TestService_CreateOrder(t *testing.T) {
	testCases := []struct {
		name       string
		order      func() domain.Order
		mock       func(ctrl *gomock.Controller) (product.Service, coupon.Service)
		createErr  error
		wantErr    error
		wantStatus domain.OrderStatus
		wantEvents int
	}{
		{
			name:  "现金单直接支付并发收据",
			order: validOrder,
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(product.Product{ID: 1, Name: "Cay kim tien", SellPrice: 50000}, nil)
				return productSvc, couponmocks.NewMockService(ctrl)
			},
			wantStatus: domain.StatusPaid,
			wantEvents: 1,
		},
		{
			name: "网关单以待支付入库",
			order: func() domain.Order {
				o := validOrder()
				o.PaymentMethod = domain.PaymentMethodVNPay
				return o
			},
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(product.Product{ID: 1, Name: "Cay kim tien", SellPrice: 50000}, nil)
				return productSvc, couponmocks.NewMockService(ctrl)
			},
			wantStatus: domain.StatusPending,
			wantEvents: 0,
		},
		{
			name: "金额对不上",
			order: func() domain.Order {
				o := validOrder()
				o.FinalPrice = 99999
				return o
			},
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(product.Product{ID: 1, Name: "Cay kim tien", SellPrice: 50000}, nil)
				return productSvc, couponmocks.NewMockService(ctrl)
			},
			wantErr: ErrPriceMismatch,
		},
		{
			name: "带优惠券的金额校验",
			order: func() domain.Order {
				o := validOrder()
				o.CouponCode = "TET2024"
				o.Discount = 20000
				o.FinalPrice = 80000
				return o
			},
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(product.Product{ID: 1, Name: "Cay kim tien", SellPrice: 50000}, nil)
				couponSvc := couponmocks.NewMockService(ctrl)
				couponSvc.EXPECT().Redeem(gomock.Any(), "TET2024").
					Return(coupon.Coupon{Code: "TET2024", DiscountValue: 20000}, nil)
				return productSvc, couponSvc
			},
			wantStatus: domain.StatusPaid,
			wantEvents: 1,
		},
		{
			name: "优惠券已用完",
			order: func() domain.Order {
				o := validOrder()
				o.CouponCode = "TET2024"
				o.Discount = 20000
				o.FinalPrice = 80000
				return o
			},
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(product.Product{ID: 1, Name: "Cay kim tien", SellPrice: 50000}, nil)
				couponSvc := couponmocks.NewMockService(ctrl)
				couponSvc.EXPECT().Redeem(gomock.Any(), "TET2024").
					Return(coupon.Coupon{}, coupon.ErrCouponExhausted)
				return productSvc, couponSvc
			},
			wantErr: ErrCouponExhausted,
		},
		{
			name: "落库失败回滚优惠券",
			order: func() domain.Order {
				o := validOrder()
				o.CouponCode = "TET2024"
				o.Discount = 20000
				o.FinalPrice = 80000
				return o
			},
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(product.Product{ID: 1, Name: "Cay kim tien", SellPrice: 50000}, nil)
				couponSvc := couponmocks.NewMockService(ctrl)
				couponSvc.EXPECT().Redeem(gomock.Any(), "TET2024").
					Return(coupon.Coupon{Code: "TET2024", DiscountValue: 20000}, nil)
				couponSvc.EXPECT().Release(gomock.Any(), "TET2024").Return(nil)
				return productSvc, couponSvc
			},
			createErr: errors.New("mock db error"),
			wantErr:   errors.New("mock db error"),
		},
		{
			name: "商品不存在",
			order: func() domain.Order {
				o := validOrder()
				o.Items = []domain.OrderItem{{ProductID: 404, Quantity: 1, UnitPrice: 50000}}
				o.FinalPrice = 50000
				return o
			},
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(404)).
					Return(product.Product{}, product.ErrProductNotFound)
				return productSvc, couponmocks.NewMockService(ctrl)
			},
			wantErr: ErrProductNotFound,
		},
		{
			name: "缺少收件人",
			order: func() domain.Order {
				o := validOrder()
				o.Name = ""
				return o
			},
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				return productmocks.NewMockService(ctrl), couponmocks.NewMockService(ctrl)
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "数量非法",
			order: func() domain.Order {
				o := validOrder()
				o.Items = []domain.OrderItem{{ProductID: 1, Quantity: 0, UnitPrice: 50000}}
				return o
			},
			mock: func(ctrl *gomock.Controller) (product.Service, coupon.Service) {
				return productmocks.NewMockService(ctrl), couponmocks.NewMockService(ctrl)
			},
			wantErr: ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := newMemoryRepository()
			repo.createErr = tc.createErr
			producer := &recordingProducer{}
			productSvc, couponSvc := tc.mock(ctrl)
			svc := NewService(repo, productSvc, couponSvc, producer)

			created, err := svc.CreateOrder(context.Background(), tc.order())
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				assert.Empty(t, producer.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, created.Status)
			assert.Len(t, producer.events, tc.wantEvents)
			// 单价取调用方传入的价格，小计按数量乘单价
			for _, it := range created.Items {
				assert.Equal(t, it.Quantity*it.UnitPrice, it.TotalPrice)
				assert.NotEmpty(t, it.ProductName)
			}
		})
	}
}

func TestService_CreateOrder_PricingSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	productSvc := productmocks.NewMockService(ctrl)
	// 目录价与下单价不同，快照目录价但按下单价计费
	productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
		Return(product.Product{ID: 1, Name: "Cay kim tien", SellPrice: 60000}, nil)
	svc := NewService(newMemoryRepository(), productSvc, couponmocks.NewMockService(ctrl), &recordingProducer{})

	created, err := svc.CreateOrder(context.Background(), validOrder())
	require.NoError(t, err)
	require.Len(t, created.Items, 1)
	assert.Equal(t, int64(60000), created.Items[0].ProductPrice)
	assert.Equal(t, int64(50000), created.Items[0].UnitPrice)
	assert.Equal(t, int64(100000), created.Items[0].TotalPrice)
	assert.Equal(t, int64(100000), created.FinalPrice)
}

func TestService_MarkPaidBySN(t *testing.T) {
	newSvc := func(repo *memoryRepository, producer *recordingProducer) Service {
		ctrl := gomock.NewController(t)
		return NewService(repo, productmocks.NewMockService(ctrl), couponmocks.NewMockService(ctrl), producer)
	}

	t.Run("待支付订单转为已支付并发收据", func(t *testing.T) {
		repo := newMemoryRepository()
		repo.orders["OR123"] = &domain.Order{
			SN: "OR123", Status: domain.StatusPending,
			Name: "Nguyen Van A", Email: "a@example.com",
		}
		producer := &recordingProducer{}
		svc := newSvc(repo, producer)

		err := svc.MarkPaidBySN(context.Background(), "OR123", 100000, "NCB")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, repo.orders["OR123"].Status)
		assert.Equal(t, int64(100000), repo.orders["OR123"].PaidAmount)
		assert.Equal(t, "NCB", repo.orders["OR123"].BankCode)
		assert.Len(t, producer.events, 1)
	})

	t.Run("重复回调终态不变也不再发收据", func(t *testing.T) {
		repo := newMemoryRepository()
		repo.orders["OR123"] = &domain.Order{
			SN: "OR123", Status: domain.StatusPending,
			Name: "Nguyen Van A", Email: "a@example.com",
		}
		producer := &recordingProducer{}
		svc := newSvc(repo, producer)

		require.NoError(t, svc.MarkPaidBySN(context.Background(), "OR123", 100000, "NCB"))
		require.NoError(t, svc.MarkPaidBySN(context.Background(), "OR123", 100000, "NCB"))
		assert.Equal(t, domain.StatusPaid, repo.orders["OR123"].Status)
		assert.Len(t, producer.events, 1)
	})

	t.Run("订单不存在", func(t *testing.T) {
		svc := newSvc(newMemoryRepository(), &recordingProducer{})
		err := svc.MarkPaidBySN(context.Background(), "OR404", 100000, "NCB")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("订单已经超时关闭", func(t *testing.T) {
		repo := newMemoryRepository()
		repo.orders["OR123"] = &domain.Order{SN: "OR123", Status: domain.StatusExpired}
		producer := &recordingProducer{}
		svc := newSvc(repo, producer)

		err := svc.MarkPaidBySN(context.Background(), "OR123", 100000, "NCB")
		assert.ErrorIs(t, err, ErrOrderNotPayable)
		assert.Equal(t, domain.StatusExpired, repo.orders["OR123"].Status)
		assert.Empty(t, producer.events)
	})
}

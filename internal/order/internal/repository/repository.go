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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/greenshop/internal/order/internal/domain"
	"github.com/ecodeclub/greenshop/internal/order/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/order.mock.go OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	UpdateContact(ctx context.Context, order domain.Order) error
	// MarkPaidBySN 返回 true 表示本次调用完成了 pending 到 paid 的转换
	MarkPaidBySN(ctx context.Context, sn string, paidAmount int64, bankCode string) (bool, error)
	ListExpiredPending(ctx context.Context, deadline int64, offset, limit int) ([]domain.Order, error)
	TotalExpiredPending(ctx context.Context, deadline int64) (int64, error)
	CloseExpired(ctx context.Context, ids []int64) error
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	id, err := r.dao.CreateOrder(ctx, r.toEntity(order), r.toItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = id
	return order, nil
}

func (r *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := r.dao.FindItemsByOrderID(ctx, o.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o, items), nil
}

func (r *orderRepository) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	o, err := r.dao.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := r.dao.FindItemsByOrderID(ctx, o.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o, items), nil
}

func (r *orderRepository) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByBuyerID(ctx, buyerID, offset, limit)
	return r.toDomains(os), err
}

func (r *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByStatus(ctx, status.ToUint8(), offset, limit)
	return r.toDomains(os), err
}

func (r *orderRepository) UpdateContact(ctx context.Context, order domain.Order) error {
	return r.dao.UpdateContact(ctx, r.toEntity(order))
}

func (r *orderRepository) MarkPaidBySN(ctx context.Context, sn string, paidAmount int64, bankCode string) (bool, error) {
	affected, err := r.dao.MarkPaidBySN(ctx, sn, paidAmount, bankCode)
	return affected > 0, err
}

func (r *orderRepository) ListExpiredPending(ctx context.Context, deadline int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListExpiredPending(ctx, deadline, offset, limit)
	return r.toDomains(os), err
}

func (r *orderRepository) TotalExpiredPending(ctx context.Context, deadline int64) (int64, error) {
	return r.dao.TotalExpiredPending(ctx, deadline)
}

func (r *orderRepository) CloseExpired(ctx context.Context, ids []int64) error {
	return r.dao.CloseExpired(ctx, ids)
}

func (r *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		ID:            order.ID,
		SN:            order.SN,
		BuyerID:       order.BuyerID,
		Name:          order.Name,
		Address:       order.Address,
		Phone:         order.Phone,
		Email:         order.Email,
		Note:          order.Note,
		PaymentMethod: order.PaymentMethod,
		CouponCode:    order.CouponCode,
		Discount:      order.Discount,
		FinalPrice:    order.FinalPrice,
		Status:        order.Status.ToUint8(),
		PaidAmount:    order.PaidAmount,
		BankCode:      order.BankCode,
	}
}

func (r *orderRepository) toItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductID:    src.ProductID,
			ProductName:  src.ProductName,
			ProductPrice: src.ProductPrice,
			Quantity:     src.Quantity,
			UnitPrice:    src.UnitPrice,
			TotalPrice:   src.TotalPrice,
		}
	})
}

func (r *orderRepository) toDomain(o dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:            o.ID,
		SN:            o.SN,
		BuyerID:       o.BuyerID,
		Name:          o.Name,
		Address:       o.Address,
		Phone:         o.Phone,
		Email:         o.Email,
		Note:          o.Note,
		PaymentMethod: o.PaymentMethod,
		CouponCode:    o.CouponCode,
		Discount:      o.Discount,
		FinalPrice:    o.FinalPrice,
		Status:        domain.OrderStatus(o.Status),
		PaidAmount:    o.PaidAmount,
		BankCode:      o.BankCode,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				OrderID:      src.OrderID,
				ProductID:    src.ProductID,
				ProductName:  src.ProductName,
				ProductPrice: src.ProductPrice,
				Quantity:     src.Quantity,
				UnitPrice:    src.UnitPrice,
				TotalPrice:   src.TotalPrice,
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}

func (r *orderRepository) toDomains(os []dao.Order) []domain.Order {
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, nil)
	})
}

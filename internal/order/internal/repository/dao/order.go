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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type OrderDAO interface {
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	ListByStatus(ctx context.Context, status uint8, offset, limit int) ([]Order, error)
	UpdateContact(ctx context.Context, o Order) error
	// MarkPaidBySN 是 pending 到 paid 的 CAS，返回受影响行数。
	// 返回 0 表示订单不存在或者已经不处于 pending 状态。
	MarkPaidBySN(ctx context.Context, sn string, paidAmount int64, bankCode string) (int64, error)
	ListExpiredPending(ctx context.Context, deadline int64, offset, limit int) ([]Order, error)
	TotalExpiredPending(ctx context.Context, deadline int64) (int64, error)
	CloseExpired(ctx context.Context, ids []int64) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime = now
	o.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
			items[i].Ctime = now
			items[i].Utime = now
		}
		return tx.Create(&items).Error
	})
	return o.ID, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).First(&o, "sn = ?", sn).Error
	return o, err
}

func (d *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).First(&o, "sn = ? AND buyer_id = ?", sn, buyerID).Error
	return o, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	err := d.db.WithContext(ctx).Find(&items, "order_id = ?", orderID).Error
	return items, err
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var os []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&os).Error
	return os, err
}

func (d *OrderGORMDAO) ListByStatus(ctx context.Context, status uint8, offset, limit int) ([]Order, error) {
	var os []Order
	err := d.db.WithContext(ctx).
		Where("status = ?", status).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&os).Error
	return os, err
}

func (d *OrderGORMDAO) UpdateContact(ctx context.Context, o Order) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", o.ID).
		Updates(map[string]any{
			"name":    o.Name,
			"address": o.Address,
			"phone":   o.Phone,
			"email":   o.Email,
			"note":    o.Note,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) MarkPaidBySN(ctx context.Context, sn string, paidAmount int64, bankCode string) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status = ?", sn, StatusPending).
		Updates(map[string]any{
			"status":      StatusPaid,
			"paid_amount": paidAmount,
			"bank_code":   bankCode,
			"utime":       time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *OrderGORMDAO) ListExpiredPending(ctx context.Context, deadline int64, offset, limit int) ([]Order, error) {
	var os []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", StatusPending, deadline).
		Offset(offset).Limit(limit).
		Order("id ASC").
		Find(&os).Error
	return os, err
}

func (d *OrderGORMDAO) TotalExpiredPending(ctx context.Context, deadline int64) (int64, error) {
	var total int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND ctime < ?", StatusPending, deadline).
		Count(&total).Error
	return total, err
}

func (d *OrderGORMDAO) CloseExpired(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id IN ? AND status = ?", ids, StatusPending).
		Updates(map[string]any{
			"status": StatusExpired,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

const (
	StatusPending uint8 = 0
	StatusPaid    uint8 = 1
	StatusExpired uint8 = 2
)

type Order struct {
	ID            int64  `gorm:"primaryKey,autoIncrement"`
	SN            string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn"`
	BuyerID       int64  `gorm:"index:idx_order_buyer"`
	Name          string `gorm:"type:varchar(128);not null"`
	Address       string `gorm:"type:varchar(512);not null"`
	Phone         string `gorm:"type:varchar(32);not null"`
	Email         string `gorm:"type:varchar(256);not null"`
	Note          string `gorm:"type:varchar(1024)"`
	PaymentMethod string `gorm:"type:varchar(16);not null"`
	CouponCode    string `gorm:"type:varchar(64)"`
	Discount      int64  `gorm:"not null"`
	FinalPrice    int64  `gorm:"not null"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:0;index:idx_order_status"`
	PaidAmount    int64
	BankCode      string `gorm:"type:varchar(32)"`
	Ctime         int64  `gorm:"index:idx_order_ctime"`
	Utime         int64
}

type OrderItem struct {
	ID           int64  `gorm:"primaryKey,autoIncrement"`
	OrderID      int64  `gorm:"not null;index:idx_order_item_order"`
	ProductID    int64  `gorm:"not null"`
	ProductName  string `gorm:"type:varchar(256);not null"`
	ProductPrice int64  `gorm:"not null"`
	Quantity     int64  `gorm:"not null"`
	UnitPrice    int64  `gorm:"not null"`
	TotalPrice   int64  `gorm:"not null"`
	Ctime        int64
	Utime        int64
}

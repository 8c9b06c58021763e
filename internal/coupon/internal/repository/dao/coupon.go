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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrCouponDuplicate 代码撞了唯一索引
	ErrCouponDuplicate = errors.New("优惠券代码已存在")
	// ErrCouponExhausted 使用次数已经到达上限
	ErrCouponExhausted = errors.New("优惠券已达使用上限")
)

type CouponDAO interface {
	Insert(ctx context.Context, c Coupon) (int64, error)
	FindByID(ctx context.Context, id int64) (Coupon, error)
	FindByCode(ctx context.Context, code string) (Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	ListUsable(ctx context.Context) ([]Coupon, error)
	Update(ctx context.Context, c Coupon) error
	Delete(ctx context.Context, id int64) error
	Redeem(ctx context.Context, code string) error
	Release(ctx context.Context, code string) error
}

type CouponGORMDAO struct {
	db *egorm.Component
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &CouponGORMDAO{db: db}
}

func (d *CouponGORMDAO) Insert(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrCouponDuplicate
		}
	}
	return c.Id, err
}

func (d *CouponGORMDAO) FindByID(ctx context.Context, id int64) (Coupon, error) {
	var c Coupon
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *CouponGORMDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var c Coupon
	// code 列是 BINARY collation，大小写敏感
	err := d.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	return c, err
}

func (d *CouponGORMDAO) List(ctx context.Context) ([]Coupon, error) {
	var cs []Coupon
	err := d.db.WithContext(ctx).Order("ctime DESC").Find(&cs).Error
	return cs, err
}

func (d *CouponGORMDAO) ListUsable(ctx context.Context) ([]Coupon, error) {
	var cs []Coupon
	err := d.db.WithContext(ctx).
		Where("current_usage < max_usage").
		Order("ctime DESC").Find(&cs).Error
	return cs, err
}

func (d *CouponGORMDAO) Update(ctx context.Context, c Coupon) error {
	c.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Coupon{}).
		Where("id = ?", c.Id).
		Updates(map[string]any{
			"code":           c.Code,
			"discount_value": c.DiscountValue,
			"current_usage":  c.CurrentUsage,
			"max_usage":      c.MaxUsage,
			"utime":          c.Utime,
		}).Error
}

func (d *CouponGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Coupon{}).Error
}

// Redeem 消耗一次使用次数。
// 单条带条件的 UPDATE，current_usage 永远不会越过 max_usage，
// 并发下单抢同一张券也只会有 max_usage 个成功
func (d *CouponGORMDAO) Redeem(ctx context.Context, code string) error {
	res := d.db.WithContext(ctx).Model(&Coupon{}).
		Where("code = ? AND current_usage < max_usage", code).
		Updates(map[string]any{
			"current_usage": gorm.Expr("current_usage + 1"),
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 区分不存在还是用完了
		_, err := d.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		return ErrCouponExhausted
	}
	return nil
}

// Release 回补一次使用次数，订单落库失败时的补偿动作
func (d *CouponGORMDAO) Release(ctx context.Context, code string) error {
	return d.db.WithContext(ctx).Model(&Coupon{}).
		Where("code = ? AND current_usage > 0", code).
		Updates(map[string]any{
			"current_usage": gorm.Expr("current_usage - 1"),
			"utime":         time.Now().UnixMilli(),
		}).Error
}

type Coupon struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:优惠券自增ID"`
	Code          string `gorm:"type:varchar(64) BINARY;not null;uniqueIndex:uniq_coupon_code;comment:优惠券代码"`
	DiscountValue int64  `gorm:"not null;comment:折扣金额"`
	CurrentUsage  int64  `gorm:"not null;default:0;comment:当前使用次数"`
	MaxUsage      int64  `gorm:"not null;comment:最大使用次数"`
	Ctime         int64
	Utime         int64
}

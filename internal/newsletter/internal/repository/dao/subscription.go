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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound   = gorm.ErrRecordNotFound
	ErrDuplicateEmail = errors.New("该邮箱已经订阅")
)

type SubscriptionDAO interface {
	Insert(ctx context.Context, s Subscription) (int64, error)
	Update(ctx context.Context, s Subscription) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Subscription, error)
	ListPending(ctx context.Context) ([]Subscription, error)
}

type SubscriptionGORMDAO struct {
	db *egorm.Component
}

func NewSubscriptionGORMDAO(db *egorm.Component) SubscriptionDAO {
	return &SubscriptionGORMDAO{db: db}
}

func (d *SubscriptionGORMDAO) Insert(ctx context.Context, s Subscription) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := d.db.WithContext(ctx).Create(&s).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateEmail
		}
	}
	return s.ID, err
}

func (d *SubscriptionGORMDAO) Update(ctx context.Context, s Subscription) error {
	return d.db.WithContext(ctx).Model(&Subscription{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"coupon_id": s.CouponID,
			"consent":   s.Consent,
			"done":      s.Done,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (d *SubscriptionGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&Subscription{}, "id = ?", id).Error
}

func (d *SubscriptionGORMDAO) FindByID(ctx context.Context, id int64) (Subscription, error) {
	var s Subscription
	err := d.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return s, err
}

func (d *SubscriptionGORMDAO) ListPending(ctx context.Context) ([]Subscription, error) {
	var ss []Subscription
	err := d.db.WithContext(ctx).
		Where("done = ?", false).
		Order("id ASC").
		Find(&ss).Error
	return ss, err
}

type Subscription struct {
	ID       int64         `gorm:"primaryKey,autoIncrement"`
	Email    string        `gorm:"type:varchar(256);uniqueIndex:uniq_newsletter_email"`
	CouponID sql.NullInt64 `gorm:"column:coupon_id"`
	Consent  bool
	Done     bool `gorm:"index:idx_newsletter_done"`
	Ctime    int64
	Utime    int64
}

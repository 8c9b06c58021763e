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

type ReviewDAO interface {
	Insert(ctx context.Context, r Review) (int64, error)
	Update(ctx context.Context, r Review) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Review, error)
	List(ctx context.Context, offset, limit int) ([]Review, error)
	ListActiveByProduct(ctx context.Context, productID int64) ([]Review, error)
}

type ReviewGORMDAO struct {
	db *egorm.Component
}

func NewReviewGORMDAO(db *egorm.Component) ReviewDAO {
	return &ReviewGORMDAO{db: db}
}

func (d *ReviewGORMDAO) Insert(ctx context.Context, r Review) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := d.db.WithContext(ctx).Create(&r).Error
	return r.ID, err
}

func (d *ReviewGORMDAO) Update(ctx context.Context, r Review) error {
	return d.db.WithContext(ctx).Model(&Review{}).
		Where("id = ?", r.ID).
		Updates(map[string]any{
			"content": r.Content,
			"rate":    r.Rate,
			"active":  r.Active,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (d *ReviewGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&Review{}, "id = ?", id).Error
}

func (d *ReviewGORMDAO) FindByID(ctx context.Context, id int64) (Review, error) {
	var r Review
	err := d.db.WithContext(ctx).First(&r, "id = ?", id).Error
	return r, err
}

func (d *ReviewGORMDAO) List(ctx context.Context, offset, limit int) ([]Review, error) {
	var rs []Review
	err := d.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&rs).Error
	return rs, err
}

func (d *ReviewGORMDAO) ListActiveByProduct(ctx context.Context, productID int64) ([]Review, error) {
	var rs []Review
	err := d.db.WithContext(ctx).
		Where("product_id = ? AND active = ?", productID, true).
		Order("id DESC").
		Find(&rs).Error
	return rs, err
}

type Review struct {
	ID        int64  `gorm:"primaryKey,autoIncrement"`
	ProductID int64  `gorm:"index:idx_review_product"`
	Name      string `gorm:"type:varchar(128)"`
	Email     string `gorm:"type:varchar(256)"`
	Content   string `gorm:"type:text"`
	Rate      int
	Active    bool
	Ctime     int64
	Utime     int64
}

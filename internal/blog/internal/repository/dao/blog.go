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

type BlogDAO interface {
	Insert(ctx context.Context, b Blog) (int64, error)
	Update(ctx context.Context, b Blog) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Blog, error)
	List(ctx context.Context, offset, limit int) ([]Blog, error)
	ListHot(ctx context.Context) ([]Blog, error)
	ListBanner(ctx context.Context) ([]Blog, error)
	Latest(ctx context.Context, limit int) ([]Blog, error)
}

type BlogGORMDAO struct {
	db *egorm.Component
}

func NewBlogGORMDAO(db *egorm.Component) BlogDAO {
	return &BlogGORMDAO{db: db}
}

func (d *BlogGORMDAO) Insert(ctx context.Context, b Blog) (int64, error) {
	now := time.Now().UnixMilli()
	b.Ctime = now
	b.Utime = now
	err := d.db.WithContext(ctx).Create(&b).Error
	return b.ID, err
}

func (d *BlogGORMDAO) Update(ctx context.Context, b Blog) error {
	b.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Blog{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"title":          b.Title,
			"image":          b.Image,
			"content":        b.Content,
			"display_hot":    b.DisplayHot,
			"display_banner": b.DisplayBanner,
			"utime":          b.Utime,
		}).Error
}

func (d *BlogGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&Blog{}, "id = ?", id).Error
}

func (d *BlogGORMDAO) FindByID(ctx context.Context, id int64) (Blog, error) {
	var b Blog
	err := d.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return b, err
}

func (d *BlogGORMDAO) List(ctx context.Context, offset, limit int) ([]Blog, error) {
	var bs []Blog
	err := d.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&bs).Error
	return bs, err
}

func (d *BlogGORMDAO) ListHot(ctx context.Context) ([]Blog, error) {
	var bs []Blog
	err := d.db.WithContext(ctx).
		Where("display_hot = ?", true).
		Order("id DESC").
		Find(&bs).Error
	return bs, err
}

func (d *BlogGORMDAO) ListBanner(ctx context.Context) ([]Blog, error) {
	var bs []Blog
	err := d.db.WithContext(ctx).
		Where("display_banner = ?", true).
		Order("id DESC").
		Find(&bs).Error
	return bs, err
}

func (d *BlogGORMDAO) Latest(ctx context.Context, limit int) ([]Blog, error) {
	var bs []Blog
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Limit(limit).
		Find(&bs).Error
	return bs, err
}

type Blog struct {
	ID            int64  `gorm:"primaryKey,autoIncrement"`
	Title         string `gorm:"type:varchar(512)"`
	Image         string `gorm:"type:varchar(1024)"`
	Content       string `gorm:"type:longtext"`
	DisplayHot    bool   `gorm:"index:idx_blog_hot"`
	DisplayBanner bool   `gorm:"index:idx_blog_banner"`
	Ctime         int64
	Utime         int64
}

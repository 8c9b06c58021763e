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
	// ErrDuplicateName 商品和分类的名称都有唯一索引
	ErrDuplicateName = errors.New("名称已存在")
)

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	List(ctx context.Context) ([]Product, error)
	ListOnShelf(ctx context.Context) ([]Product, error)
	ListHot(ctx context.Context) ([]Product, error)
	ListByCategory(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]Product, error)
	Insert(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int64) error

	FindCategoryByID(ctx context.Context, id int64) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListActiveCategories(ctx context.Context) ([]Category, error)
	InsertCategory(ctx context.Context, c Category) (int64, error)
	UpdateCategory(ctx context.Context, c Category) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *ProductGORMDAO) List(ctx context.Context) ([]Product, error) {
	var ps []Product
	err := d.db.WithContext(ctx).Order("ctime DESC").Find(&ps).Error
	return ps, err
}

func (d *ProductGORMDAO) ListOnShelf(ctx context.Context) ([]Product, error) {
	var ps []Product
	err := d.db.WithContext(ctx).
		Where("display_type = ?", DisplayOn).
		Order("ctime DESC").Find(&ps).Error
	return ps, err
}

func (d *ProductGORMDAO) ListHot(ctx context.Context) ([]Product, error) {
	var ps []Product
	err := d.db.WithContext(ctx).
		Where("display_type = ? AND display_hot = ?", DisplayOn, DisplayOn).
		Order("ctime DESC").Find(&ps).Error
	return ps, err
}

// ListByCategory 同分类下的关联商品，排除自己
func (d *ProductGORMDAO) ListByCategory(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]Product, error) {
	var ps []Product
	err := d.db.WithContext(ctx).
		Where("category_id = ? AND id != ? AND display_type = ?", categoryID, excludeID, DisplayOn).
		Limit(limit).Find(&ps).Error
	return ps, err
}

func (d *ProductGORMDAO) Insert(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	if isUniqueIndexErr(err) {
		return 0, ErrDuplicateName
	}
	return p.Id, err
}

func (d *ProductGORMDAO) Update(ctx context.Context, p Product) error {
	p.Utime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.Id).Updates(&p).Error
	if isUniqueIndexErr(err) {
		return ErrDuplicateName
	}
	return err
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{}).Error
}

func (d *ProductGORMDAO) FindCategoryByID(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *ProductGORMDAO) ListCategories(ctx context.Context) ([]Category, error) {
	var cs []Category
	err := d.db.WithContext(ctx).Find(&cs).Error
	return cs, err
}

func (d *ProductGORMDAO) ListActiveCategories(ctx context.Context) ([]Category, error) {
	var cs []Category
	err := d.db.WithContext(ctx).Where("active = 1").Find(&cs).Error
	return cs, err
}

func (d *ProductGORMDAO) InsertCategory(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	if isUniqueIndexErr(err) {
		return 0, ErrDuplicateName
	}
	return c.Id, err
}

func (d *ProductGORMDAO) UpdateCategory(ctx context.Context, c Category) error {
	c.Utime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", c.Id).Updates(&c).Error
	if isUniqueIndexErr(err) {
		return ErrDuplicateName
	}
	return err
}

func isUniqueIndexErr(err error) bool {
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

const (
	DisplayOn  = 1
	DisplayOff = 2
)

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_name;comment:商品名称"`
	Image       string `gorm:"type:varchar(512);not null;comment:商品图片文件名"`
	Price       int64  `gorm:"not null;comment:标价"`
	SellPrice   int64  `gorm:"not null;comment:售价"`
	CategoryId  int64  `gorm:"not null;index:idx_category_id;comment:分类ID"`
	DisplayType int64  `gorm:"type:tinyint unsigned;not null;default:1;comment:1=上架 2=下架"`
	DisplayHot  int64  `gorm:"type:tinyint unsigned;not null;default:1;comment:1=热卖"`
	Ctime       int64
	Utime       int64
}

type Category struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:分类自增ID"`
	Name   string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_category_name;comment:分类名称"`
	Active int64  `gorm:"type:tinyint unsigned;not null;default:1;comment:1=启用 2=停用"`
	Ctime  int64
	Utime  int64
}

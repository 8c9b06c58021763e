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

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 用户名或者邮箱撞了唯一索引
var ErrUserDuplicate = errors.New("用户已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "username = ?", username).Error
	return u, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) List(ctx context.Context, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password": password,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Username string `gorm:"type:varchar(128);uniqueIndex:uniq_user_username"`
	Email    string `gorm:"type:varchar(256);uniqueIndex:uniq_user_email"`
	Password string `gorm:"type:varchar(128)"`
	Phone    string `gorm:"type:varchar(32)"`
	Role     string `gorm:"type:varchar(16);index:idx_user_role"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

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
	"github.com/ecodeclub/greenshop/internal/user/internal/domain"
	"github.com/ecodeclub/greenshop/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Update(ctx context.Context, u domain.User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
}

type CachedUserRepository struct {
	dao dao.UserDAO
}

func NewCachedUserRepository(d dao.UserDAO) UserRepository {
	return &CachedUserRepository{
		dao: d,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.dao.FindById(ctx, id)
	return ur.toDomain(u), err
}

func (ur *CachedUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := ur.dao.FindByUsername(ctx, username)
	return ur.toDomain(u), err
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.toDomain(u), err
}

func (ur *CachedUserRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	us, err := ur.dao.List(ctx, offset, limit)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.toDomain(src)
	}), err
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	// 密码与角色走专门的入口，不在这里更新
	return ur.dao.UpdateNonZeroFields(ctx, dao.User{
		Id:       u.Id,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
	})
}

func (ur *CachedUserRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ur.dao.UpdatePassword(ctx, id, password)
}

func (ur *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}

func (ur *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Phone:    u.Phone,
		Role:     u.Role,
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}

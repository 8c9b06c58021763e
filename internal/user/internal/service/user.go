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

	"github.com/ecodeclub/greenshop/internal/user/internal/domain"
	"github.com/ecodeclub/greenshop/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrUserDuplicate      = repository.ErrUserDuplicate
	ErrInvalidCredentials = errors.New("用户名或者密码不对")
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Signup(ctx context.Context, u domain.User) (int64, error)
	CreateStaff(ctx context.Context, u domain.User) (int64, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据，不含密码和角色
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) Signup(ctx context.Context, u domain.User) (int64, error) {
	u.Role = domain.RoleCustomer
	return svc.create(ctx, u)
}

func (svc *userService) CreateStaff(ctx context.Context, u domain.User) (int64, error) {
	if u.Role != domain.RoleStaff && u.Role != domain.RoleAdmin {
		u.Role = domain.RoleStaff
	}
	return svc.create(ctx, u)
}

func (svc *userService) create(ctx context.Context, u domain.User) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u.Password = string(hash)
	return svc.repo.Create(ctx, u)
}

func (svc *userService) Login(ctx context.Context, username, password string) (domain.User, error) {
	u, err := svc.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		// 不区分用户不存在和密码错误
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	u.Password = ""
	return u, err
}

func (svc *userService) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	us, err := svc.repo.List(ctx, offset, limit)
	for i := range us {
		us[i].Password = ""
	}
	return us, err
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	user.Password = ""
	user.Role = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	u, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword))
	if err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return svc.repo.UpdatePassword(ctx, id, string(hash))
}

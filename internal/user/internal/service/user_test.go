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
	"testing"

	"github.com/ecodeclub/greenshop/internal/user/internal/domain"
	"github.com/ecodeclub/greenshop/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryUserRepository struct {
	repository.UserRepository
	users  map[int64]*domain.User
	nextID int64
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[int64]*domain.User)}
}

func (m *memoryUserRepository) Create(_ context.Context, u domain.User) (int64, error) {
	for _, ex := range m.users {
		if ex.Username == u.Username || ex.Email == u.Email {
			return 0, repository.ErrUserDuplicate
		}
	}
	m.nextID++
	u.Id = m.nextID
	m.users[u.Id] = &u
	return u.Id, nil
}

func (m *memoryUserRepository) FindById(_ context.Context, id int64) (domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return *u, nil
}

func (m *memoryUserRepository) FindByUsername(_ context.Context, username string) (domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return *u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (m *memoryUserRepository) UpdatePassword(_ context.Context, id int64, password string) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Password = password
	return nil
}

func TestUserService_SignupAndLogin(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewUserService(repo)

	id, err := svc.Signup(context.Background(), domain.User{
		Username: "nguyenvana",
		Password: "hello#world123",
		Email:    "a@example.com",
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
	// 密码落库前经过哈希
	assert.NotEqual(t, "hello#world123", repo.users[id].Password)
	assert.Equal(t, domain.RoleCustomer, repo.users[id].Role)

	u, err := svc.Login(context.Background(), "nguyenvana", "hello#world123")
	require.NoError(t, err)
	assert.Equal(t, id, u.Id)
	assert.Empty(t, u.Password)

	_, err = svc.Login(context.Background(), "nguyenvana", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	// 用户不存在与密码错误不可区分
	_, err = svc.Login(context.Background(), "nobody", "hello#world123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_SignupDuplicate(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewUserService(repo)

	_, err := svc.Signup(context.Background(), domain.User{
		Username: "nguyenvana", Password: "p1", Email: "a@example.com",
	})
	require.NoError(t, err)
	_, err = svc.Signup(context.Background(), domain.User{
		Username: "nguyenvana", Password: "p2", Email: "b@example.com",
	})
	assert.ErrorIs(t, err, ErrUserDuplicate)
}

func TestUserService_CreateStaff(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewUserService(repo)

	id, err := svc.CreateStaff(context.Background(), domain.User{
		Username: "staff01", Password: "p1", Email: "s@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, repo.users[id].Role)

	id2, err := svc.CreateStaff(context.Background(), domain.User{
		Username: "admin01", Password: "p1", Email: "ad@example.com", Role: domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, repo.users[id2].Role)
}

func TestUserService_ChangePassword(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewUserService(repo)

	id, err := svc.Signup(context.Background(), domain.User{
		Username: "nguyenvana", Password: "old-password", Email: "a@example.com",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), id, "bad-old", "new-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(context.Background(), id, "old-password", "new-password"))
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.users[id].Password), []byte("new-password")))
}

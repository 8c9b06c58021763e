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

	"github.com/ecodeclub/greenshop/internal/email"
	emailmocks "github.com/ecodeclub/greenshop/internal/email/mocks"
	"github.com/ecodeclub/greenshop/internal/user/internal/domain"
	"github.com/ecodeclub/greenshop/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type memoryCodeRepo struct {
	codes map[string]string
}

func newMemoryCodeRepo() *memoryCodeRepo {
	return &memoryCodeRepo{codes: make(map[string]string)}
}

func (m *memoryCodeRepo) SetEmailCode(_ context.Context, email string, code string) error {
	m.codes[email] = code
	return nil
}

func (m *memoryCodeRepo) GetEmailCode(_ context.Context, email string) (string, error) {
	code, ok := m.codes[email]
	if !ok {
		return "", repository.ErrCodeNotFound
	}
	return code, nil
}

func (m *memoryCodeRepo) DeleteEmailCode(_ context.Context, email string) error {
	delete(m.codes, email)
	return nil
}

func TestVerificationCodeSvc_ResetPasswordFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := newMemoryUserRepository()
	_, err := userRepo.Create(context.Background(), domain.User{
		Username: "nguyenvana",
		Password: "old-hash",
		Email:    "a@example.com",
	})
	require.NoError(t, err)

	codeRepo := newMemoryCodeRepo()
	var sent email.Mail
	emailSvc := emailmocks.NewMockService(ctrl)
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m email.Mail) error {
			sent = m
			return nil
		})

	svc := NewVerificationCodeSvc(userRepo, codeRepo, emailSvc, "GreenShop")

	require.NoError(t, svc.Send(context.Background(), "a@example.com"))
	code := codeRepo.codes["a@example.com"]
	require.Len(t, code, 6)
	assert.Equal(t, "a@example.com", sent.To)
	assert.Contains(t, string(sent.Body), code)

	// 错误的验证码
	err = svc.ResetPassword(context.Background(), "a@example.com", "000000x", "new-password")
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)

	// 正确的验证码完成重置
	require.NoError(t, svc.ResetPassword(context.Background(), "a@example.com", code, "new-password"))
	u, err := userRepo.FindByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-password")))

	// 用过的验证码立即作废，不能再发起一次重置
	err = svc.ResetPassword(context.Background(), "a@example.com", code, "another-password")
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

func TestVerificationCodeSvc_GenerateCode(t *testing.T) {
	svc := &verificationCodeSvc{}
	for i := 0; i < 100; i++ {
		code, err := svc.generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestVerificationCodeSvc_SendUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewVerificationCodeSvc(newMemoryUserRepository(), newMemoryCodeRepo(),
		emailmocks.NewMockService(ctrl), "GreenShop")
	err := svc.Send(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerificationCodeSvc_VerifyExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewVerificationCodeSvc(newMemoryUserRepository(), newMemoryCodeRepo(),
		emailmocks.NewMockService(ctrl), "GreenShop")
	err := svc.Verify(context.Background(), "a@example.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

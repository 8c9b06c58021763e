package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"

	"github.com/ecodeclub/greenshop/internal/email"
	"github.com/ecodeclub/greenshop/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidVerificationCode = errors.New("验证码错误或者已过期")

//go:generate mockgen -source=./verification_code.go -package=usermocks -destination=../../mocks/verification_code.mock.go VerificationCodeSvc
type VerificationCodeSvc interface {
	// Send 给注册邮箱发送重置密码验证码
	Send(ctx context.Context, emailAddr string) error
	Verify(ctx context.Context, emailAddr string, code string) error
	ResetPassword(ctx context.Context, emailAddr string, code string, newPassword string) error
}

type verificationCodeSvc struct {
	userRepo repository.UserRepository
	codeRepo repository.VerificationCodeRepo
	emailSvc email.Service
	from     string
}

func NewVerificationCodeSvc(userRepo repository.UserRepository,
	codeRepo repository.VerificationCodeRepo,
	emailSvc email.Service,
	from string,
) VerificationCodeSvc {
	return &verificationCodeSvc{
		userRepo: userRepo,
		codeRepo: codeRepo,
		emailSvc: emailSvc,
		from:     from,
	}
}

func (s *verificationCodeSvc) Send(ctx context.Context, emailAddr string) error {
	// 邮箱必须对应一个已注册用户
	_, err := s.userRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	code, err := s.generateCode()
	if err != nil {
		return err
	}
	err = s.codeRepo.SetEmailCode(ctx, emailAddr, code)
	if err != nil {
		return err
	}
	return s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.from,
		To:      emailAddr,
		Subject: "Mã xác nhận đặt lại mật khẩu",
		Body:    []byte(fmt.Sprintf("Mã xác nhận của bạn là %s, có hiệu lực trong 10 phút.", code)),
	})
}

func (s *verificationCodeSvc) Verify(ctx context.Context, emailAddr string, code string) error {
	stored, err := s.codeRepo.GetEmailCode(ctx, emailAddr)
	if errors.Is(err, repository.ErrCodeNotFound) {
		return ErrInvalidVerificationCode
	}
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrInvalidVerificationCode
	}
	return nil
}

func (s *verificationCodeSvc) ResetPassword(ctx context.Context, emailAddr string, code string, newPassword string) error {
	err := s.Verify(ctx, emailAddr, code)
	if err != nil {
		return err
	}
	u, err := s.userRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	err = s.userRepo.UpdatePassword(ctx, u.Id, string(hash))
	if err != nil {
		return err
	}
	// 验证码即用即废，同一个码不能反复重置
	_ = s.codeRepo.DeleteEmailCode(ctx, emailAddr)
	return nil
}

func (s *verificationCodeSvc) generateCode() (string, error) {
	const digits = 6
	buf := make([]byte, digits)
	ten := big.NewInt(10)
	for i := range buf {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("生成验证码失败: %w", err)
		}
		buf[i] = byte('0') + byte(n.Int64())
	}
	return string(buf), nil
}

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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/greenshop/internal/user/internal/domain"
	"github.com/ecodeclub/greenshop/internal/user/internal/errs"
	"github.com/ecodeclub/greenshop/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
	codeSvc service.VerificationCodeSvc
}

func NewHandler(userSvc service.UserService, codeSvc service.VerificationCodeSvc) *Handler {
	return &Handler{
		userSvc: userSvc,
		codeSvc: codeSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.POST("/password/send_code", ginx.B[SendCodeReq](h.SendCode))
	users.POST("/password/verify_code", ginx.B[VerifyCodeReq](h.VerifyCode))
	users.POST("/password/reset", ginx.B[ResetPasswordReq](h.ResetPassword))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/password/change", ginx.BS[ChangePasswordReq](h.ChangePassword))
}

// AdminRoutes 账号管理，注册在角色校验中间件之后
func (h *Handler) AdminRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/list", ginx.B[ListReq](h.List))
	users.POST("/detail", ginx.B[UserIDReq](h.Detail))
	users.POST("/create", ginx.B[CreateStaffReq](h.CreateStaff))
	users.POST("/update", ginx.B[UpdateUserReq](h.Update))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg},
			errors.New("缺少注册必填字段")
	}
	uid, err := h.userSvc.Signup(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		return duplicateUserResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 注册即登录
	_, err = session.NewSessionBuilder(ctx, uid).
		SetJwtData(map[string]string{
			"role": domain.RoleCustomer,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:       uid,
			Username: req.Username,
			Email:    req.Email,
			Phone:    req.Phone,
			Role:     domain.RoleCustomer,
		},
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return invalidCredentialsResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"role": u.Role,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(u),
	}, nil
}

func (h *Handler) SendCode(ctx *ginx.Context, req SendCodeReq) (ginx.Result, error) {
	err := h.codeSvc.Send(ctx.Request.Context(), req.Email)
	if errors.Is(err, service.ErrUserNotFound) {
		return userNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) VerifyCode(ctx *ginx.Context, req VerifyCodeReq) (ginx.Result, error) {
	err := h.codeSvc.Verify(ctx.Request.Context(), req.Email, req.Code)
	if errors.Is(err, service.ErrInvalidVerificationCode) {
		return invalidCodeResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ResetPassword(ctx *ginx.Context, req ResetPasswordReq) (ginx.Result, error) {
	err := h.codeSvc.ResetPassword(ctx.Request.Context(), req.Email, req.Code, req.NewPassword)
	if errors.Is(err, service.ErrInvalidVerificationCode) {
		return invalidCodeResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(u),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		Id:       sess.Claims().Uid,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		return duplicateUserResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ChangePassword(ctx *ginx.Context, req ChangePasswordReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.ChangePassword(ctx.Request.Context(), sess.Claims().Uid, req.OldPassword, req.NewPassword)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return invalidCredentialsResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	const defaultLimit = 20
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	us, err := h.userSvc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserListResp{
			Users: slice.Map(us, func(idx int, src domain.User) Profile {
				return h.toProfile(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req UserIDReq) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrUserNotFound) {
		return userNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toProfile(u)}, nil
}

func (h *Handler) CreateStaff(ctx *ginx.Context, req CreateStaffReq) (ginx.Result, error) {
	uid, err := h.userSvc.CreateStaff(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		return duplicateUserResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: uid}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateUserReq) (ginx.Result, error) {
	err := h.userSvc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		Id:       req.ID,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		return duplicateUserResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toProfile(u domain.User) Profile {
	return Profile{
		Id:       u.Id,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}

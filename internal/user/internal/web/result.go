package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/greenshop/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateUserResult = ginx.Result{
		Code: errs.DuplicateUser.Code,
		Msg:  errs.DuplicateUser.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
	invalidCodeResult = ginx.Result{
		Code: errs.InvalidVerificationCode.Code,
		Msg:  errs.InvalidVerificationCode.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
)

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/greenshop/internal/coupon/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.CouponNotFound.Code,
		Msg:  errs.CouponNotFound.Msg,
	}
	duplicateResult = ginx.Result{
		Code: errs.CouponDuplicate.Code,
		Msg:  errs.CouponDuplicate.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)

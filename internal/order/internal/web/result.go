package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/greenshop/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	couponNotFoundResult = ginx.Result{
		Code: errs.CouponNotFound.Code,
		Msg:  errs.CouponNotFound.Msg,
	}
	couponExhaustedResult = ginx.Result{
		Code: errs.CouponExhausted.Code,
		Msg:  errs.CouponExhausted.Msg,
	}
	priceMismatchResult = ginx.Result{
		Code: errs.PriceMismatch.Code,
		Msg:  errs.PriceMismatch.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
)

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/greenshop/internal/payment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidSignatureResult = ginx.Result{
		Code: errs.InvalidSignature.Code,
		Msg:  errs.InvalidSignature.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidCallbackResult = ginx.Result{
		Code: errs.InvalidCallback.Code,
		Msg:  errs.InvalidCallback.Msg,
	}
)

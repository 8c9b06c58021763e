package errs

var (
	SystemError      = ErrorCode{Code: 507001, Msg: "系统错误"}
	OrderNotFound    = ErrorCode{Code: 507002, Msg: "订单不存在"}
	InvalidInput     = ErrorCode{Code: 507003, Msg: "缺少下单必填字段"}
	ProductNotFound  = ErrorCode{Code: 507004, Msg: "商品不存在"}
	CouponNotFound   = ErrorCode{Code: 507005, Msg: "优惠券不存在"}
	CouponExhausted  = ErrorCode{Code: 507006, Msg: "优惠券已经用完"}
	PriceMismatch    = ErrorCode{Code: 507007, Msg: "订单金额校验不通过"}
	DuplicateRequest = ErrorCode{Code: 507008, Msg: "重复请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

package errs

var (
	SystemError     = ErrorCode{Code: 506001, Msg: "系统错误"}
	CouponNotFound  = ErrorCode{Code: 506002, Msg: "优惠券不存在"}
	CouponExhausted = ErrorCode{Code: 506003, Msg: "优惠券已达上限"}
	CouponDuplicate = ErrorCode{Code: 506004, Msg: "优惠券代码已存在"}
	InvalidInput    = ErrorCode{Code: 506005, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

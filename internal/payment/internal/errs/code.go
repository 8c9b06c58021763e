package errs

var (
	SystemError      = ErrorCode{Code: 508001, Msg: "系统错误"}
	InvalidSignature = ErrorCode{Code: 508002, Msg: "签名校验失败"}
	OrderNotFound    = ErrorCode{Code: 508003, Msg: "订单不存在"}
	InvalidCallback  = ErrorCode{Code: 508004, Msg: "回调参数非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

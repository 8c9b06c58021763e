package errs

var (
	SystemError          = ErrorCode{Code: 505001, Msg: "系统错误"}
	DuplicateEmail       = ErrorCode{Code: 505002, Msg: "该邮箱已经订阅"}
	SubscriptionNotFound = ErrorCode{Code: 505003, Msg: "订阅不存在"}
	InvalidInput         = ErrorCode{Code: 505004, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

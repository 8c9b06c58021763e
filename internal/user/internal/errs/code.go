package errs

var (
	SystemError             = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserNotFound            = ErrorCode{Code: 501002, Msg: "用户不存在"}
	DuplicateUser           = ErrorCode{Code: 501003, Msg: "用户名或者邮箱已被占用"}
	InvalidCredentials      = ErrorCode{Code: 501004, Msg: "用户名或者密码错误"}
	InvalidVerificationCode = ErrorCode{Code: 501005, Msg: "验证码错误或者已过期"}
	InvalidInput            = ErrorCode{Code: 501006, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

package errs

var (
	SystemError  = ErrorCode{Code: 503001, Msg: "系统错误"}
	BlogNotFound = ErrorCode{Code: 503002, Msg: "文章不存在"}
	InvalidInput = ErrorCode{Code: 503003, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

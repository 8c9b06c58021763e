package errs

var (
	SystemError     = ErrorCode{Code: 504001, Msg: "系统错误"}
	ReviewNotFound  = ErrorCode{Code: 504002, Msg: "评价不存在"}
	ProductNotFound = ErrorCode{Code: 504003, Msg: "商品不存在"}
	InvalidRate     = ErrorCode{Code: 504004, Msg: "评分必须在 1 到 5 之间"}
	InvalidInput    = ErrorCode{Code: 504005, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

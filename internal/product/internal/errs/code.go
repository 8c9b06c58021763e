package errs

var (
	SystemError      = ErrorCode{Code: 502001, Msg: "系统错误"}
	ProductNotFound  = ErrorCode{Code: 502002, Msg: "商品不存在"}
	CategoryNotFound = ErrorCode{Code: 502003, Msg: "分类不存在"}
	DuplicateName    = ErrorCode{Code: 502004, Msg: "名称已存在"}
	InvalidInput     = ErrorCode{Code: 502005, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

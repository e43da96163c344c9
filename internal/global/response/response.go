package response

import (
	"fmt"
	"net/http"

	"school-activities-system/config"
	"school-activities-system/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// 错误码与 HTTP 状态码对齐，失败响应直接以错误码作为状态码返回
var (
	ErrInvalidRequest     = newError(400, "Invalid request")
	ErrUnauthorized       = newError(401, "Authentication required")
	ErrInvalidCredentials = newError(401, "Invalid username or password")
	ErrForbidden          = newError(403, "Forbidden")
	ErrNotFound           = newError(404, "Resource not found")
	ErrConflict           = newError(409, "Conflict")
	ErrAlreadyExists      = newError(409, "Already exists")
	ErrDatabase           = newError(500, "Internal database error")
	ErrInternal           = newError(500, "Internal server error")
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg"`
	Origin string `json:"origin,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// Success 返回成功响应，data 最多只取第一个
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，非 *Error 的错误一律按内部错误处理
func Fail(c *gin.Context, err error) {
	e := asError(err)

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// 原始错误只在 debug 模式下发，避免泄露内部细节
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}

	c.Set(ErrorContextKey, e)
	c.Set(ResponseContextKey, body)
	c.JSON(httpStatus(e.Code), body)

	// 5xx 上报 Sentry，业务错误不上报
	sentry.CaptureException(c, e)
}

// Recovery 捕获 handler 中的 panic，转成 500 响应
// 由 middleware.Recovery 以 defer 方式调用
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrInternal.WithOrigin(err))
		c.Abort()
	}
}

func asError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return ErrInternal.WithOrigin(err)
}

func httpStatus(code int32) int {
	if code >= 100 && code < 600 {
		return int(code)
	}
	return http.StatusInternalServerError
}

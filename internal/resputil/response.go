package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope of every endpoint.
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data,omitempty"`
	Msg  string    `json:"msg"`
}

func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Response[T]{
		Code: OK,
		Data: data,
		Msg:  "success",
	})
}

// Error reports a business failure with HTTP 200; the frontend switches on
// the code. Transport-level failures use HTTPError instead.
func Error(c *gin.Context, msg string, code ErrorCode) {
	c.JSON(http.StatusOK, Response[any]{
		Code: code,
		Msg:  msg,
	})
}

// BadRequestError reports a field-scoped validation failure so the caller
// can highlight the specific inputs.
func BadRequestError(c *gin.Context, msg string, fields map[string]string) {
	c.JSON(http.StatusOK, Response[map[string]string]{
		Code: InvalidRequest,
		Data: fields,
		Msg:  msg,
	})
}

func HTTPError(c *gin.Context, status int, msg string, code ErrorCode) {
	c.JSON(status, Response[any]{
		Code: code,
		Msg:  msg,
	})
}

package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for every API reply. Callers check the explicit
// success flag rather than the HTTP status.
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func HandleSuccess(ctx *gin.Context, data interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	resp := Response{Success: true, Code: errorCode(ErrSuccess), Message: ErrSuccess.Error(), Data: data}
	ctx.JSON(http.StatusOK, resp)
}

func HandleError(ctx *gin.Context, httpCode int, err error, data interface{}) {
	if err == nil {
		err = ErrInternalServerError
	}
	resp := Response{Success: false, Code: errorCode(err), Message: err.Error(), Data: data, Error: err.Error()}
	ctx.JSON(httpCode, resp)
}

var errorCodeMap = map[error]int{}

func newError(code int, msg string) error {
	err := errors.New(msg)
	errorCodeMap[err] = code
	return err
}

func errorCode(err error) int {
	if code, ok := errorCodeMap[err]; ok {
		return code
	}
	return 500
}

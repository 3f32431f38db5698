package http_common

import (
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// Abort writes an ErrorResponse and stops the handler chain.
func Abort(ctx *gin.Context, code int, public string, err error) {
	resp := ErrorResponse{
		Error: public,
		Code:  code,
	}
	if err != nil {
		resp.Message = err.Error()
	}
	ctx.AbortWithStatusJSON(code, resp)
}

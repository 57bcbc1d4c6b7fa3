package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Code string `json:"code,omitempty"`
}

// AbortWithError preserves the original error on the gin context for
// logging while responding with a sanitized envelope. code distinguishes
// outcomes that map to the same status, such as delivery failures.
func AbortWithError(c *gin.Context, status int, err error, msg string, code string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Code: code}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

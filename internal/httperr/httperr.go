package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// exposeDetail controls whether the underlying error string is included in
// responses. Disabled in production deployments.
var exposeDetail = true

func Init(production bool) {
	exposeDetail = !production
}

func Write(c *gin.Context, status int, message string, err error) {
	body := gin.H{"message": message}
	if err != nil && exposeDetail {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

func BadRequest(c *gin.Context, message string, err error) {
	Write(c, http.StatusBadRequest, message, err)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message, nil)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message, nil)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message, nil)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message, nil)
}

func Internal(c *gin.Context, message string, err error) {
	Write(c, http.StatusInternalServerError, message, err)
}

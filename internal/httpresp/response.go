package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every successful response carries a message and, when there is a payload,
// a data field.

func OK(c *gin.Context, message string, data any) {
	write(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data any) {
	write(c, http.StatusCreated, message, data)
}

func write(c *gin.Context, status int, message string, data any) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

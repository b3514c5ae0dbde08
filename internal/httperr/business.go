package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BusinessError is a typed failure raised below the HTTP layer. The status
// decides which response it maps to, so no domain error ever falls through
// to a generic 500.
type BusinessError struct {
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrValidation(message string) error {
	return BusinessError{Status: http.StatusBadRequest, Message: message}
}

func ErrUnauthenticated(message string) error {
	return BusinessError{Status: http.StatusUnauthorized, Message: message}
}

func ErrForbidden(message string) error {
	return BusinessError{Status: http.StatusForbidden, Message: message}
}

func ErrNotFound(message string) error {
	return BusinessError{Status: http.StatusNotFound, Message: message}
}

func ErrConflict(message string) error {
	return BusinessError{Status: http.StatusConflict, Message: message}
}

func IsStatus(err error, status int) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Status == status
}

// WriteError maps a BusinessError to its status, and anything else to a 500
// with the given message.
func WriteError(c *gin.Context, err error, fallback string) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, be.Status, be.Message, nil)
		return
	}
	Internal(c, fallback, err)
}

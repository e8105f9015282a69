// Package httperr carries business-layer failures together with the HTTP
// status they map to, so transport code never has to guess.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusConflict, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: message}
}

// Respond writes err as a flat {"message": ...} body. Anything that is not
// an *Error is reported as a 500 without leaking its detail.
func Respond(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		c.JSON(e.Status, gin.H{"message": e.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// StatusFor maps a business code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeProviderNotFound, CodeAppointmentMissing, CodeWaitlistMissing:
		return http.StatusNotFound
	case CodeSlotTaken, CodeInvalidState:
		return http.StatusConflict
	case CodeTooLateToCancel:
		return http.StatusUnprocessableEntity
	case CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// FromError writes err as a JSON error response. Causes of
// store_unavailable are not leaked to the client.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "unexpected error")
		return
	}

	message := be.Message
	switch {
	case be.Code == CodeStoreUnavailable:
		message = "storage temporarily unavailable"
	case message == "":
		message = be.Code
	}

	Write(c, StatusFor(be.Code), be.Code, message)
}

// IsExclusionConflict reports whether err is a postgres exclusion
// constraint violation (SQLSTATE 23P01).
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

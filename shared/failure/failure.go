package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Sentinels for the booking domain. Match them with errors.Is.
var (
	ErrNotFound                  = errors.New("not found")
	ErrInvalidRange              = errors.New("invalid date range")
	ErrSlotConflict              = errors.New("slot already booked")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrPartialSettlement         = errors.New("partial settlement failure")
	ErrGatewayTimeout            = errors.New("payment gateway timeout")
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel a failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		cause:   ErrNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// InvalidRange reports a check-in/check-out pair that yields no nights.
func InvalidRange(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		cause:   ErrInvalidRange,
	}
}

// SlotConflict reports an attempt to hold a facility slot that is already held.
func SlotConflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		cause:   ErrSlotConflict,
	}
}

func PaymentVerificationFailed(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		cause:   ErrPaymentVerificationFailed,
	}
}

// PartialSettlementFailure reports a verified payment whose cart could not be persisted.
func PartialSettlementFailure(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
		cause:   ErrPartialSettlement,
	}
}

func GatewayTimeout(msg string) error {
	return &Failure{
		Code:    http.StatusGatewayTimeout,
		Message: msg,
		cause:   ErrGatewayTimeout,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// DetailedError is implemented by structured errors that carry payload for the client,
// such as the available/requested days of an insufficient balance.
type DetailedError interface {
	error
	ErrorDetails() any
}

// ToHTTP resolves the status, code and message used by response.Error.
// Anything that is not an AppError is reported as an internal error.
func ToHTTP(err error) HTTPError {
	if err == nil {
		return HTTPError{Status: http.StatusOK}
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		return HTTPError{
			Status:  ErrInternal.HTTPStatus,
			Code:    ErrInternal.Code,
			Message: ErrInternal.Message,
		}
	}

	httpErr := HTTPError{
		Status:  appErr.HTTPStatus,
		Code:    appErr.Code,
		Message: appErr.Message,
	}

	var detailed DetailedError
	if errors.As(err, &detailed) {
		httpErr.Message = detailed.Error()
		httpErr.Details = detailed.ErrorDetails()
	}
	return httpErr
}

package platform

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/serverless-bench/primebench/pkg/domain"
)

// ErrorResponse is the JSON body written for failed invocations. The
// field names match the error object returned by AWS Lambda.
type ErrorResponse struct {
	Message string `json:"errorMessage"`
	Type    string `json:"errorType"`
}

// NewErrorResponse names the error by its concrete type.
func NewErrorResponse(err error) ErrorResponse {
	errType := reflect.TypeOf(err)
	errTypeName := errType.Name()
	if errType.Kind() == reflect.Ptr {
		errTypeName = errType.Elem().Name()
	}
	return ErrorResponse{
		Message: err.Error(),
		Type:    errTypeName,
	}
}

// StatusFromError maps an invocation error to an HTTP status code.
func StatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var (
		invalid     domain.InvalidArgumentError
		invalidPtr  *domain.InvalidArgumentError
		notFound    domain.NotFoundError
		notFoundPtr *domain.NotFoundError
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &invalidPtr):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.As(err, &notFoundPtr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

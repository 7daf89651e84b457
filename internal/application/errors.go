package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openpays/checkout-orchestrator/internal/domain"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeConfiguration      = "CONFIGURATION_ERROR"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeConflict           = "CONFLICT"
	ErrCodePreconditionFailed = "PRECONDITION_FAILED"
	ErrCodeUpstream           = "UPSTREAM_ERROR"
	ErrCodeUpstreamTimeout    = "UPSTREAM_TIMEOUT"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewConfigurationError marks missing or inconsistent static
// configuration. Fatal, never retryable.
func NewConfigurationError(field string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConfiguration,
		Message:    fmt.Sprintf("missing required configuration: %s", field),
		HTTPStatus: http.StatusInternalServerError,
	}
}

func NewValidationError(msg string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewConflictError wraps a write-once violation from the reference
// store. It indicates duplicate processing, not a shopper mistake.
func NewConflictError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConflict,
		Message:    "payment reference conflict",
		HTTPStatus: http.StatusConflict,
		Err:        err,
	}
}

func NewPreconditionError(msg string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePreconditionFailed,
		Message:    msg,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewUpstreamError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstream,
		Message:    "payment processor request failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewUpstreamTimeoutError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamTimeout,
		Message:    "payment processor request timed out",
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// WrapUpstream classifies a processor client failure, keeping timeout
// distinct so the boundary can map it to 504.
func WrapUpstream(err error) *ServiceError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewUpstreamTimeoutError(err)
	}
	return NewUpstreamError(err)
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, domain.ErrReferenceConflict):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeUpstreamTimeout
	}

	return ErrCodeInternal
}

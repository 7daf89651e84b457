package processor

import (
	"errors"
	"fmt"
)

// ProcessorError is a structured rejection from the processor API.
type ProcessorError struct {
	Code       string
	Message    string
	StatusCode int
}

type processorErrorResponse struct {
	Status    int    `json:"status"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *ProcessorError) IsRetryable() bool {
	return e.StatusCode >= 500
}

func IsProcessorError(err error) (*ProcessorError, bool) {
	var procErr *ProcessorError
	ok := errors.As(err, &procErr)
	return procErr, ok
}

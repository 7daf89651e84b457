package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeReferenceConflict = "REFERENCE_CONFLICT"
	ErrCodeMissingReference  = "MISSING_REFERENCE"
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
)

// ErrReferenceConflict signals a write-once violation: a session already
// holds a different processor reference.
var ErrReferenceConflict = errors.New("payment reference already assigned")

func NewReferenceConflictError(sessionID, existing, attempted string) *DomainError {
	return &DomainError{
		Code:    ErrCodeReferenceConflict,
		Message: fmt.Sprintf("session %s already holds reference %s, refusing %s", sessionID, existing, attempted),
		Err:     ErrReferenceConflict,
	}
}

func NewMissingReferenceError(sessionID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingReference,
		Message: fmt.Sprintf("session %s has no completed payment to act on", sessionID),
	}
}

func NewInvalidAmountError(amount int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %d", amount),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

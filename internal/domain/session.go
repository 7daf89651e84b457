// Package domain encodes the checkout session and the outcome model for
// processor result codes.
package domain

import (
	"errors"
	"time"
)

// Money is a monetary value in minor units.
type Money struct {
	Amount   int64
	Currency string
}

// PaymentSession represents one checkout attempt. The session is created
// when the shopper starts checkout and correlates the initial payment
// submission with a later redirect resolution through its ID alone.
type PaymentSession struct {
	ID           string
	Amount       Money
	PspReference string
	ResultCode   ResultCode
	CreatedAt    time.Time
}

func NewPaymentSession(id string, amount Money) (*PaymentSession, error) {
	if id == "" {
		return nil, errors.New("session ID is required")
	}
	if amount.Currency == "" {
		return nil, errors.New("currency is required")
	}
	if amount.Amount <= 0 {
		return nil, NewInvalidAmountError(amount.Amount)
	}

	return &PaymentSession{
		ID:        id,
		Amount:    amount,
		CreatedAt: time.Now(),
	}, nil
}

// AssignReference records the processor-assigned payment reference.
// A reference is write-once: assigning the same value again is a no-op,
// assigning a different one is a conflict.
func (s *PaymentSession) AssignReference(pspReference string) error {
	if pspReference == "" {
		return nil
	}
	if s.PspReference != "" && s.PspReference != pspReference {
		return NewReferenceConflictError(s.ID, s.PspReference, pspReference)
	}
	s.PspReference = pspReference
	return nil
}

// RecordResult stores the last result code the processor reported for
// this session.
func (s *PaymentSession) RecordResult(code ResultCode) {
	s.ResultCode = code
}

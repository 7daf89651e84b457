package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpays/checkout-orchestrator/internal/domain"
)

func newTestSession(t *testing.T) *domain.PaymentSession {
	t.Helper()
	session, err := domain.NewPaymentSession("session-1", domain.Money{Amount: 9999, Currency: "EUR"})
	require.NoError(t, err)
	return session
}

func TestNewPaymentSession_Validation(t *testing.T) {
	_, err := domain.NewPaymentSession("", domain.Money{Amount: 100, Currency: "EUR"})
	assert.Error(t, err)

	_, err = domain.NewPaymentSession("s", domain.Money{Amount: 100})
	assert.Error(t, err)

	_, err = domain.NewPaymentSession("s", domain.Money{Amount: 0, Currency: "EUR"})
	assert.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidAmount))
}

func TestAssignReference_WriteOnce(t *testing.T) {
	session := newTestSession(t)

	require.NoError(t, session.AssignReference("PSP-1"))
	assert.Equal(t, "PSP-1", session.PspReference)

	// Same reference again is an idempotent no-op.
	require.NoError(t, session.AssignReference("PSP-1"))

	// A different reference is a conflict and leaves the original.
	err := session.AssignReference("PSP-2")
	assert.ErrorIs(t, err, domain.ErrReferenceConflict)
	assert.Equal(t, "PSP-1", session.PspReference)
}

func TestAssignReference_EmptyIsIgnored(t *testing.T) {
	session := newTestSession(t)

	require.NoError(t, session.AssignReference(""))
	assert.Empty(t, session.PspReference)
}

func TestRecordResult(t *testing.T) {
	session := newTestSession(t)

	session.RecordResult(domain.ResultAuthorised)
	assert.Equal(t, domain.ResultAuthorised, session.ResultCode)
}

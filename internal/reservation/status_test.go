package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPendingPayment, StatusWaitingVerification, StatusConfirmed, StatusCancelled} {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, Status("pending").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPendingPayment, StatusWaitingVerification, true},
		{StatusPendingPayment, StatusCancelled, true},
		{StatusPendingPayment, StatusConfirmed, false},

		{StatusWaitingVerification, StatusConfirmed, true},
		{StatusWaitingVerification, StatusCancelled, true},
		{StatusWaitingVerification, StatusPendingPayment, false},

		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPendingPayment, false},
		{StatusConfirmed, StatusWaitingVerification, false},

		{StatusCancelled, StatusPendingPayment, false},
		{StatusCancelled, StatusWaitingVerification, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestStatusNoSelfTransitions(t *testing.T) {
	for _, s := range []Status{StatusPendingPayment, StatusWaitingVerification, StatusConfirmed, StatusCancelled} {
		assert.False(t, s.CanTransitionTo(s), "self transition for %q", s)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())

	assert.False(t, StatusPendingPayment.IsTerminal())
	assert.False(t, StatusWaitingVerification.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
}

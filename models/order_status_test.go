package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusReady, false},
		{StatusPending, StatusCompleted, false},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusPreparing, StatusPending, false},
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusCancelled, true},
		{StatusReady, StatusPreparing, false},
		// completed and cancelled are terminal
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusPreparing, false},
		{StatusCancelled, StatusPreparing, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatusSameStateAllowed(t *testing.T) {
	for status := range statusTransitions {
		assert.Truef(t, status.CanTransitionTo(status), "%s -> %s", status, status)
	}
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, StatusPending.CanTransitionTo(OrderStatus("shipped")))
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusPreparing.Terminal())
	assert.False(t, StatusReady.Terminal())
}

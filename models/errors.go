package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and controllers.
var (
	ErrAuthRequired = errors.New("authentication required")
	ErrForbidden    = errors.New("you do not have permission")
)

// ValidationError covers local input problems (empty cart, bad quantity,
// unknown order type). It is always raised before any store call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistenceError wraps a failed store operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// PartialLoadError signals that the item join failed while projecting an
// order. The whole projection call fails; no partial list is ever returned.
type PartialLoadError struct {
	OrderID uint
	Err     error
}

func (e *PartialLoadError) Error() string {
	return fmt.Sprintf("failed to load items for order %d: %v", e.OrderID, e.Err)
}

func (e *PartialLoadError) Unwrap() error {
	return e.Err
}

// TransitionError rejects an illegal status transition.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

// ConflictError signals that a status update carried a stale version token:
// another session changed the order after the caller last read it.
type ConflictError struct {
	OrderID uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("order %d was modified by another session, reload and retry", e.OrderID)
}

// OrderCreationFailed wraps any failure during checkout. The caller's cart
// is untouched so the user can retry without re-entering selections.
type OrderCreationFailed struct {
	Err error
}

func (e *OrderCreationFailed) Error() string {
	return fmt.Sprintf("order creation failed: %v", e.Err)
}

func (e *OrderCreationFailed) Unwrap() error {
	return e.Err
}

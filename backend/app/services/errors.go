package services

import "errors"

// Error taxonomy for the control API. Controllers map these onto status
// codes; anything else is treated as a storage fault and reported as a
// generic internal error.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")

	// ErrNoOrders is the empty-mailbox sentinel. It is a normal outcome
	// of polling, not a failure.
	ErrNoOrders = errors.New("no pending orders")
)

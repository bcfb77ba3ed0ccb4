package storage

import "errors"

// Sentinel errors returned by the store. Controllers translate them to HTTP
// status codes; anything else is a storage failure and surfaces as a 500.
var (
	ErrNotFound       = errors.New("record not found")
	ErrCartEmpty      = errors.New("cart is empty")
	ErrMissingFields  = errors.New("shipping address and payment method are required")
	ErrTerminalStatus = errors.New("order cannot be cancelled")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrNotOwner       = errors.New("access denied")
	ErrEmailTaken     = errors.New("email already registered")
)

package application

import "errors"

// Sentinel errors translated to HTTP statuses at the handlers.
var (
	// ErrForbidden: the authenticated identity does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict: the user already holds an agreement.
	ErrConflict = errors.New("already has an agreement")
	// ErrNotFound: a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrGateway: the payment provider rejected the request or could not
	// be reached.
	ErrGateway = errors.New("payment gateway error")
)

package stock

import "errors"

// Domain errors. Callers branch with errors.Is; the HTTP boundary maps them
// to status codes and none of them are fatal to the process.
var (
	ErrNotFound              = errors.New("not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrExceedsStock          = errors.New("requested amount exceeds remaining stock")
	ErrUnsupportedTransition = errors.New("unsupported status transition")
)

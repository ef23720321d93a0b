package seeding

import "errors"

// Errors returned by the seeding engine. They describe input contract
// violations: callers should fix the input rather than retry.
var (
	ErrInvalidSize     = errors.New("invalid size")
	ErrSizeMismatch    = errors.New("sizes must be equal")
	ErrUnsupportedSize = errors.New("unsupported bracket size")
	ErrTiedScore       = errors.New("scores are tied")
	ErrUnknownOrdering = errors.New("unknown seed ordering")
)

package tax

import "errors"

// Plain sentinels; domain imports pricing, which imports this package.
var (
	ErrInvalidRate      = errors.New("tax: rate must be between 0 and 1")
	ErrNegativeSubtotal = errors.New("tax: negative subtotal")
)

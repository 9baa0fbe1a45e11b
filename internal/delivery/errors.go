package delivery

import "errors"

var (
	ErrNegativeFee      = errors.New("delivery: negative fee")
	ErrNegativeSubtotal = errors.New("delivery: negative subtotal")
)

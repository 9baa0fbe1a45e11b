package service

import (
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/postgres"
)

// Checkout errors
var (
	ErrMissingSessionID = &domain.Error{Code: domain.EINVALID, Message: "Checkout session ID missing from event"}
	ErrGatewayDisabled  = &domain.Error{Code: domain.ENOTIMPL, Message: "Online payment is not configured. Use demo checkout."}
)

// dbErr turns a query error into a domain error: no rows becomes the given
// sentinel, anything else an internal error.
func dbErr(err error, notFound *domain.Error, op, message string) error {
	if notFound != nil && postgres.IsNoRows(err) {
		return domain.WithOp(notFound, op)
	}
	return domain.Internal(err, op, message)
}

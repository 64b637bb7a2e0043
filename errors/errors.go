// Package errors defines the sentinel errors of the negotiation core
// and their mapping to transport-level status codes.
package errors

import "fmt"

var (
	// ErrNotAvailable is deliberately coarse: a missing product, a product
	// no longer Available and a buyer requesting their own product all
	// surface the same message to the caller.
	ErrNotAvailable = fmt.Errorf("not available or invalid request")

	ErrProductNotFound      = fmt.Errorf("product not found")
	ErrChatNotFound         = fmt.Errorf("chat not found")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrNotificationNotFound = fmt.Errorf("notification not found")

	ErrNotSeller           = fmt.Errorf("caller is not the seller")
	ErrInvalidPickupStatus = fmt.Errorf("invalid pickup status")

	ErrInvalidToken = fmt.Errorf("invalid or expired token")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)

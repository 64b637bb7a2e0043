// Package domain contains the core concepts of the marketplace
// negotiation system: products, chats, messages and notifications.
package domain

import "time"

// ProductStatus follows the monotonic sequence Available -> Pending -> Sold.
// There is no defined reverse path.
type ProductStatus string

const (
	StatusAvailable ProductStatus = "Available"
	StatusPending   ProductStatus = "Pending"
	StatusSold      ProductStatus = "Sold"
)

// PickupStatus is an independent secondary state, seller-settable
// regardless of the negotiation status.
type PickupStatus string

const (
	PickupAwaitingDropOff PickupStatus = "Awaiting Drop-off"
	PickupAtCenter        PickupStatus = "At Center"
	PickupShipped         PickupStatus = "Shipped"
	PickupCompleted       PickupStatus = "Completed"
)

// Valid reports whether p is one of the four allowed pickup values.
func (p PickupStatus) Valid() bool {
	switch p {
	case PickupAwaitingDropOff, PickupAtCenter, PickupShipped, PickupCompleted:
		return true
	}
	return false
}

// Product is created by the CRUD layer; this core mutates only
// Status and PickupStatus.
type Product struct {
	ID           string
	SellerID     string
	Name         string
	Price        float64
	Status       ProductStatus
	PickupStatus PickupStatus
	CreatedAt    time.Time
}

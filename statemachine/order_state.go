package statemachine

import (
	"errors"

	"food-ordering-api/models"
)

// AllStatuses lists every member of the closed status enumeration.
var AllStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusAccepted,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
	models.StatusCancelled,
}

// restaurantStatuses are the targets a restaurant owner may set on an order.
// There is no current-state precondition for owner updates; the only guard is
// membership in this set. `pending` is reserved for newly placed orders.
var restaurantStatuses = map[models.OrderStatus]bool{
	models.StatusAccepted:  true,
	models.StatusPreparing: true,
	models.StatusReady:     true,
	models.StatusDelivered: true,
	models.StatusCancelled: true,
}

// customerCancellable are the states a customer may cancel from.
var customerCancellable = map[models.OrderStatus]bool{
	models.StatusPending:  true,
	models.StatusAccepted: true,
}

// statusDescriptions backs the public tracking endpoint.
var statusDescriptions = map[models.OrderStatus]string{
	models.StatusPending:   "Order received, waiting for restaurant confirmation",
	models.StatusAccepted:  "Order accepted by restaurant, preparing your food",
	models.StatusPreparing: "Your food is being prepared",
	models.StatusReady:     "Your order is ready for delivery",
	models.StatusDelivered: "Order delivered successfully",
	models.StatusCancelled: "Order has been cancelled",
}

// ValidStatus reports whether s names a member of the enumeration.
func ValidStatus(s models.OrderStatus) bool {
	for _, st := range AllStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave s.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// RestaurantCanSet checks a restaurant-initiated status update.
func RestaurantCanSet(to models.OrderStatus) error {
	if restaurantStatuses[to] {
		return nil
	}
	return errors.New("invalid status: must be one of accepted, preparing, ready, delivered, cancelled")
}

// AdminCanSet checks an admin-initiated status override.
func AdminCanSet(to models.OrderStatus) error {
	if ValidStatus(to) {
		return nil
	}
	return errors.New("invalid status: must be one of pending, accepted, preparing, ready, delivered, cancelled")
}

// CustomerCanCancel checks a customer-initiated cancellation from the given
// state. Customers may only cancel before the kitchen starts cooking.
func CustomerCanCancel(from models.OrderStatus) error {
	if customerCancellable[from] {
		return nil
	}
	return errors.New("order cannot be cancelled at this stage")
}

// Describe maps a status to its human-readable tracking description.
func Describe(s models.OrderStatus) string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return "Unknown status"
}

package entity

// OrderStatus is the bounded set of order states. Stored as plain text; new
// orders always start as Placed. Transitions are not restricted to a fixed
// sequence, only membership in this set is enforced.
type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "Placed"
	OrderStatusPreparing  OrderStatus = "Preparing"
	OrderStatusDelivering OrderStatus = "Delivering"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusPreparing, OrderStatusDelivering,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

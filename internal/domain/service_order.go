package domain

import "time"

type OrderStatus string

const (
	OrderOpen       OrderStatus = "open"
	OrderInProgress OrderStatus = "in_progress"
	OrderClosed     OrderStatus = "closed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderOpen, OrderInProgress, OrderClosed, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderClosed || s == OrderCancelled
}

// CanTransitionTo enforces the one-directional lifecycle:
// open -> in_progress -> closed, with cancellation reachable from any
// non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch {
	case s == OrderOpen && next == OrderInProgress:
		return true
	case s == OrderInProgress && next == OrderClosed:
		return true
	case !s.Terminal() && next == OrderCancelled:
		return true
	}
	return false
}

// ServiceOrder is a work order for repair work on one vehicle, handled by
// one responsible employee.
type ServiceOrder struct {
	ID              int64       `json:"id"`
	VehicleID       int64       `json:"vehicle_id" validate:"required"`
	EmployeeID      int64       `json:"employee_id" validate:"required"`
	Status          OrderStatus `json:"status"`
	ReportedProblem string      `json:"reported_problem"`
	IntakeOdometer  int64       `json:"intake_odometer"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderServiceItem is one line of catalog work performed on an order.
type OrderServiceItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	ServiceID int64   `json:"service_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderPartItem is one part installed or replaced on an order. Every part
// line feeds the damaged-parts report for the order's vehicle.
type OrderPartItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	PartID    int64   `json:"part_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type Payment struct {
	ID      int64     `json:"id"`
	OrderID int64     `json:"order_id"`
	PaidAt  time.Time `json:"paid_at"`
	Method  string    `json:"method"`
	Amount  float64   `json:"amount"`
}

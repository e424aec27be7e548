package orders

import (
	"time"

	"mecanica/internal/domain"
	"mecanica/internal/repository"
)

type CreateOrderRequest struct {
	VehicleID       int64  `json:"vehicle_id" binding:"required"`
	EmployeeID      int64  `json:"employee_id" binding:"required"`
	IntakeOdometer  int64  `json:"intake_odometer"`
	ReportedProblem string `json:"reported_problem"`
}

type AddServiceItemRequest struct {
	ServiceID int64   `json:"service_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

type AddPartItemRequest struct {
	PartID    int64   `json:"part_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

type AddPaymentRequest struct {
	Method string  `json:"method" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderTotals is the reconciliation view over an order's items and
// payments. Paid is tracked separately from Total; a gap either way is a
// reporting fact, not an error.
type OrderTotals struct {
	OrderID int64   `json:"order_id"`
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Balance float64 `json:"balance"`
}

// OrderSnapshot is one entry of the vehicle history view.
type OrderSnapshot struct {
	ID              int64                          `json:"id"`
	Status          domain.OrderStatus             `json:"status"`
	IntakeOdometer  int64                          `json:"intake_odometer"`
	ReportedProblem string                         `json:"reported_problem"`
	CreatedAt       time.Time                      `json:"created_at"`
	Services        []repository.HistoryServiceLine `json:"services"`
	Parts           []repository.HistoryPartLine    `json:"parts"`
	Payments        []domain.Payment                `json:"payments"`
	Responsible     string                          `json:"responsible"`
}

type VehicleHistory struct {
	VehicleID int64           `json:"vehicle_id"`
	Orders    []OrderSnapshot `json:"orders"`
}

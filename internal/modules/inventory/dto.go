package inventory

import "mecanica/internal/repository"

type RecordMovementRequest struct {
	PartID   int64    `json:"part_id" binding:"required"`
	Kind     string   `json:"kind" binding:"required"`
	Quantity int      `json:"quantity"`
	Delta    int      `json:"delta"`
	OrderID  *int64   `json:"order_id"`
	UnitCost *float64 `json:"unit_cost"`
	Source   string   `json:"source"`
}

// DamagedPartsReport groups every part ever installed on one vehicle across
// its order history.
type DamagedPartsReport struct {
	VehicleID int64                       `json:"vehicle_id"`
	Parts     []repository.DamagedPartRow `json:"parts"`
}

type StockBalance struct {
	PartID  int64 `json:"part_id"`
	Balance int   `json:"balance"`
}

package domain

import "time"

type MovementKind string

const (
	MovementInbound    MovementKind = "inbound"
	MovementOutbound   MovementKind = "outbound"
	MovementAdjustment MovementKind = "adjustment"
)

func (k MovementKind) Valid() bool {
	return k == MovementInbound || k == MovementOutbound || k == MovementAdjustment
}

// StockMovement is one append-only ledger entry for a part. Quantity is
// always the positive magnitude; adjustments carry their direction in Delta
// because the movement kind alone cannot express it.
type StockMovement struct {
	ID         int64        `json:"id"`
	PartID     int64        `json:"part_id" validate:"required"`
	OrderID    *int64       `json:"order_id,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
	Kind       MovementKind `json:"kind"`
	Quantity   int          `json:"quantity"`
	Delta      int          `json:"delta,omitempty"`
	Source     string       `json:"source"`
	UnitCost   *float64     `json:"unit_cost,omitempty"`
}

// Effect is the signed contribution of the movement to the part's balance.
func (m StockMovement) Effect() int {
	switch m.Kind {
	case MovementInbound:
		return m.Quantity
	case MovementOutbound:
		return -m.Quantity
	case MovementAdjustment:
		return m.Delta
	}
	return 0
}

package repository

import (
	"context"
	"errors"
	"time"

	"mecanica/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInsufficientStock reports an outbound or negative-adjustment movement
// that would drive the part's projected balance below zero.
var ErrInsufficientStock = errors.New("insufficient stock for movement")

type StockMovementRepository struct {
	db *gorm.DB
}

func NewStockMovementRepository(db *gorm.DB) *StockMovementRepository {
	return &StockMovementRepository{db: db}
}

type stockMovementModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PartID     int64     `gorm:"column:part_id;not null;index"`
	OrderID    *int64    `gorm:"column:order_id;index"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null"`
	Kind       string    `gorm:"column:kind;size:16;not null"`
	Quantity   int       `gorm:"column:quantity;not null"`
	Delta      int       `gorm:"column:delta;not null;default:0"`
	Source     string    `gorm:"column:source;size:160"`
	UnitCost   *float64  `gorm:"column:unit_cost"`
}

func (stockMovementModel) TableName() string { return "stock_movements" }

func toDomainMovement(m stockMovementModel) domain.StockMovement {
	return domain.StockMovement{
		ID:         m.ID,
		PartID:     m.PartID,
		OrderID:    m.OrderID,
		OccurredAt: m.OccurredAt,
		Kind:       domain.MovementKind(m.Kind),
		Quantity:   m.Quantity,
		Delta:      m.Delta,
		Source:     m.Source,
		UnitCost:   m.UnitCost,
	}
}

// Record appends a movement and refreshes the part's cached balance, all in
// one transaction so two concurrent movements for the same part are
// serialized against a consistent snapshot. The part row is locked for the
// duration of the check on engines that support it.
func (r *StockMovementRepository) Record(ctx context.Context, mv *domain.StockMovement) (int, error) {
	var balance int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Row lock serializes concurrent movements for the same part on
		// Postgres; SQLite has no FOR UPDATE and serializes writers itself.
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var part partModel
		if err := q.First(&part, mv.PartID).Error; err != nil {
			return err
		}

		current, err := sumMovements(tx, mv.PartID)
		if err != nil {
			return err
		}
		balance = current + mv.Effect()
		if balance < 0 {
			return ErrInsufficientStock
		}

		m := stockMovementModel{
			PartID:     mv.PartID,
			OrderID:    mv.OrderID,
			OccurredAt: mv.OccurredAt,
			Kind:       string(mv.Kind),
			Quantity:   mv.Quantity,
			Delta:      mv.Delta,
			Source:     mv.Source,
			UnitCost:   mv.UnitCost,
		}
		if m.OccurredAt.IsZero() {
			m.OccurredAt = time.Now()
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		mv.ID = m.ID
		mv.OccurredAt = m.OccurredAt

		// The cache is recomputed from the ledger, never incremented.
		return tx.Model(&partModel{}).
			Where("id = ?", mv.PartID).
			Update("current_stock", balance).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func sumMovements(tx *gorm.DB, partID int64) (int, error) {
	var sum int
	q := `
SELECT COALESCE(SUM(CASE kind
    WHEN 'inbound' THEN quantity
    WHEN 'outbound' THEN -quantity
    ELSE delta
END), 0)
FROM stock_movements
WHERE part_id = ?
`
	if err := tx.Raw(q, partID).Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

// SumForPart is the ledger-defined balance: the signed sum of every
// movement recorded for the part.
func (r *StockMovementRepository) SumForPart(ctx context.Context, partID int64) (int, error) {
	return sumMovements(r.db.WithContext(ctx), partID)
}

// MovementListing is a ledger row joined with part display fields.
type MovementListing struct {
	ID              int64               `json:"id"`
	OccurredAt      time.Time           `json:"occurred_at"`
	Kind            domain.MovementKind `json:"kind"`
	Quantity        int                 `json:"quantity"`
	Delta           int                 `json:"delta,omitempty"`
	Source          string              `json:"source"`
	UnitCost        *float64            `json:"unit_cost,omitempty"`
	OrderID         *int64              `json:"order_id,omitempty"`
	PartID          int64               `json:"part_id"`
	PartSKU         string              `json:"part_sku"`
	PartDescription string              `json:"part_description"`
}

// List returns movements most recent first, optionally filtered by order
// and/or part.
func (r *StockMovementRepository) List(ctx context.Context, orderID, partID *int64) ([]MovementListing, error) {
	q := r.db.WithContext(ctx).
		Table("stock_movements").
		Select(`stock_movements.id AS id,
stock_movements.occurred_at AS occurred_at,
stock_movements.kind AS kind,
stock_movements.quantity AS quantity,
stock_movements.delta AS delta,
stock_movements.source AS source,
stock_movements.unit_cost AS unit_cost,
stock_movements.order_id AS order_id,
parts.id AS part_id,
parts.sku AS part_sku,
parts.description AS part_description`).
		Joins("JOIN parts ON parts.id = stock_movements.part_id").
		Order("stock_movements.occurred_at DESC")
	if orderID != nil {
		q = q.Where("stock_movements.order_id = ?", *orderID)
	}
	if partID != nil {
		q = q.Where("stock_movements.part_id = ?", *partID)
	}

	var rows []MovementListing
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

package repository

import (
	"context"

	"mecanica/internal/domain"

	"gorm.io/gorm"
)

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

type partModel struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	SKU          string `gorm:"column:sku;size:40;uniqueIndex;not null"`
	Description  string `gorm:"column:description;size:160"`
	Origin       string `gorm:"column:origin;size:16"`
	CurrentStock int    `gorm:"column:current_stock;not null;default:0"`
}

func (partModel) TableName() string { return "parts" }

func toDomainPart(m partModel) domain.Part {
	return domain.Part{
		ID:           m.ID,
		SKU:          m.SKU,
		Description:  m.Description,
		Origin:       domain.PartOrigin(m.Origin),
		CurrentStock: m.CurrentStock,
	}
}

func (r *PartRepository) List(ctx context.Context) ([]domain.Part, error) {
	var rows []partModel
	tx := r.db.WithContext(ctx).Order("description").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Part, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPart(m))
	}
	return out, nil
}

func (r *PartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	var m partModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	p := toDomainPart(m)
	return &p, nil
}

func (r *PartRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&partModel{}).Where("sku = ?", sku).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *PartRepository) Create(ctx context.Context, p *domain.Part) error {
	m := partModel{
		SKU:          p.SKU,
		Description:  p.Description,
		Origin:       string(p.Origin),
		CurrentStock: p.CurrentStock,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	p.ID = m.ID
	return nil
}

// DamagedPartRow is one grouped line of the damaged-parts report: a part and
// the total quantity installed across every order of one vehicle.
type DamagedPartRow struct {
	PartID        int64             `json:"part_id"`
	SKU           string            `json:"sku"`
	Description   string            `json:"description"`
	Origin        domain.PartOrigin `json:"origin"`
	TotalQuantity int               `json:"total_quantity"`
}

func (r *PartRepository) DamagedByVehicle(ctx context.Context, vehicleID int64) ([]DamagedPartRow, error) {
	var rows []DamagedPartRow
	q := `
SELECT parts.id AS part_id,
       parts.sku AS sku,
       parts.description AS description,
       parts.origin AS origin,
       SUM(order_part_items.quantity) AS total_quantity
FROM parts
JOIN order_part_items ON order_part_items.part_id = parts.id
JOIN service_orders ON service_orders.id = order_part_items.order_id
WHERE service_orders.vehicle_id = ?
GROUP BY parts.id, parts.sku, parts.description, parts.origin
ORDER BY parts.description
`
	tx := r.db.WithContext(ctx).Raw(q, vehicleID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

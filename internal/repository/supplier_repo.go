package repository

import (
	"context"

	"mecanica/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

type supplierModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name;size:120;not null"`
	TaxID string `gorm:"column:tax_id;size:20;uniqueIndex"`
}

func (supplierModel) TableName() string { return "suppliers" }

// supplierPartModel is the many-to-many join between suppliers and the
// parts they can source.
type supplierPartModel struct {
	SupplierID int64 `gorm:"column:supplier_id;primaryKey"`
	PartID     int64 `gorm:"column:part_id;primaryKey"`
}

func (supplierPartModel) TableName() string { return "supplier_parts" }

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	var rows []supplierModel
	tx := r.db.WithContext(ctx).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Supplier, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Supplier{ID: m.ID, Name: m.Name, TaxID: m.TaxID})
	}
	return out, nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	var m supplierModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Supplier{ID: m.ID, Name: m.Name, TaxID: m.TaxID}, nil
}

func (r *SupplierRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&supplierModel{}).Where("tax_id = ?", taxID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	m := supplierModel{Name: s.Name, TaxID: s.TaxID}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	s.ID = m.ID
	return nil
}

// AttachPart links a part to a supplier. Re-attaching is a no-op.
func (r *SupplierRepository) AttachPart(ctx context.Context, supplierID, partID int64) error {
	m := supplierPartModel{SupplierID: supplierID, PartID: partID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error
}

func (r *SupplierRepository) ListForPart(ctx context.Context, partID int64) ([]domain.Supplier, error) {
	var rows []supplierModel
	tx := r.db.WithContext(ctx).
		Joins("JOIN supplier_parts ON supplier_parts.supplier_id = suppliers.id").
		Where("supplier_parts.part_id = ?", partID).
		Order("suppliers.name").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Supplier, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Supplier{ID: m.ID, Name: m.Name, TaxID: m.TaxID})
	}
	return out, nil
}

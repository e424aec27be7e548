package repository

import (
	"context"

	"mecanica/internal/domain"

	"gorm.io/gorm"
)

type CatalogServiceRepository struct {
	db *gorm.DB
}

func NewCatalogServiceRepository(db *gorm.DB) *CatalogServiceRepository {
	return &CatalogServiceRepository{db: db}
}

type catalogServiceModel struct {
	ID            int64   `gorm:"column:id;primaryKey"`
	Description   string  `gorm:"column:description;size:160;uniqueIndex;not null"`
	StandardPrice float64 `gorm:"column:standard_price"`
}

func (catalogServiceModel) TableName() string { return "catalog_services" }

func (r *CatalogServiceRepository) List(ctx context.Context) ([]domain.CatalogService, error) {
	var rows []catalogServiceModel
	tx := r.db.WithContext(ctx).Order("description").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.CatalogService, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.CatalogService{ID: m.ID, Description: m.Description, StandardPrice: m.StandardPrice})
	}
	return out, nil
}

func (r *CatalogServiceRepository) GetByID(ctx context.Context, id int64) (*domain.CatalogService, error) {
	var m catalogServiceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.CatalogService{ID: m.ID, Description: m.Description, StandardPrice: m.StandardPrice}, nil
}

func (r *CatalogServiceRepository) ExistsByDescription(ctx context.Context, description string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&catalogServiceModel{}).Where("description = ?", description).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *CatalogServiceRepository) Create(ctx context.Context, s *domain.CatalogService) error {
	m := catalogServiceModel{Description: s.Description, StandardPrice: s.StandardPrice}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	s.ID = m.ID
	return nil
}

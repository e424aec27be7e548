package repository

import (
	"context"

	"mecanica/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name;size:120;not null"`
	TaxID string `gorm:"column:tax_id;size:20;uniqueIndex"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) domain.Client {
	return domain.Client{ID: m.ID, Name: m.Name, TaxID: m.TaxID}
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var rows []clientModel
	tx := r.db.WithContext(ctx).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainClient(m))
	}
	return out, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	c := toDomainClient(m)
	return &c, nil
}

func (r *ClientRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&clientModel{}).Where("tax_id = ?", taxID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := clientModel{Name: c.Name, TaxID: c.TaxID}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	return nil
}

package repository

import (
	"context"

	"mecanica/internal/domain"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

type employeeModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;size:120;not null"`
	Role string `gorm:"column:role;size:60"`
}

func (employeeModel) TableName() string { return "employees" }

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var rows []employeeModel
	tx := r.db.WithContext(ctx).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Employee, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Employee{ID: m.ID, Name: m.Name, Role: m.Role})
	}
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var m employeeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Employee{ID: m.ID, Name: m.Name, Role: m.Role}, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	m := employeeModel{Name: e.Name, Role: e.Role}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	e.ID = m.ID
	return nil
}

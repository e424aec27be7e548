package repository

import (
	"context"

	"mecanica/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Plate    string `gorm:"column:plate;size:10;uniqueIndex;not null"`
	Chassis  string `gorm:"column:chassis;size:30"`
	Odometer int64  `gorm:"column:odometer"`
	Make     string `gorm:"column:make;size:60"`
	Model    string `gorm:"column:model;size:60"`
	ClientID int64  `gorm:"column:client_id;not null;index"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) domain.Vehicle {
	return domain.Vehicle{
		ID:       m.ID,
		Plate:    m.Plate,
		Chassis:  m.Chassis,
		Odometer: m.Odometer,
		Make:     m.Make,
		Model:    m.Model,
		ClientID: m.ClientID,
	}
}

// VehicleListing is a vehicle row joined with its owner's display name.
type VehicleListing struct {
	domain.Vehicle
	ClientName string `json:"client_name"`
}

func (r *VehicleRepository) List(ctx context.Context) ([]VehicleListing, error) {
	var rows []struct {
		ID         int64
		Plate      string
		Chassis    string
		Odometer   int64
		Make       string
		Model      string
		ClientID   int64
		ClientName string
	}
	tx := r.db.WithContext(ctx).
		Table("vehicles").
		Select("vehicles.*, clients.name AS client_name").
		Joins("JOIN clients ON clients.id = vehicles.client_id").
		Order("vehicles.plate").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]VehicleListing, 0, len(rows))
	for _, m := range rows {
		out = append(out, VehicleListing{
			Vehicle: domain.Vehicle{
				ID:       m.ID,
				Plate:    m.Plate,
				Chassis:  m.Chassis,
				Odometer: m.Odometer,
				Make:     m.Make,
				Model:    m.Model,
				ClientID: m.ClientID,
			},
			ClientName: m.ClientName,
		})
	}
	return out, nil
}

func (r *VehicleRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Vehicle, error) {
	var rows []vehicleModel
	tx := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("plate").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainVehicle(m))
	}
	return out, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	v := toDomainVehicle(m)
	return &v, nil
}

func (r *VehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&vehicleModel{}).Where("plate = ?", plate).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := vehicleModel{
		Plate:    v.Plate,
		Chassis:  v.Chassis,
		Odometer: v.Odometer,
		Make:     v.Make,
		Model:    v.Model,
		ClientID: v.ClientID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	v.ID = m.ID
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"mecanica/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrSlotTaken reports that a non-cancelled appointment already occupies the
// exact (vehicle, timestamp) slot.
var ErrSlotTaken = errors.New("appointment slot already taken")

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ClientID    int64     `gorm:"column:client_id;not null"`
	VehicleID   int64     `gorm:"column:vehicle_id;not null;index"`
	ServiceID   int64     `gorm:"column:service_id;not null"`
	ScheduledAt time.Time `gorm:"column:scheduled_at;not null"`
	Status      string    `gorm:"column:status;size:16;not null"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) domain.Appointment {
	return domain.Appointment{
		ID:          m.ID,
		ClientID:    m.ClientID,
		VehicleID:   m.VehicleID,
		ServiceID:   m.ServiceID,
		ScheduledAt: m.ScheduledAt,
		Status:      domain.AppointmentStatus(m.Status),
	}
}

// Book checks the slot and inserts the appointment in one transaction.
// Conflicts consider exact-timestamp equality only: the schema carries no
// service duration, so overlapping-but-distinct timestamps do not collide.
// The partial unique index idx_no_double_booking backstops the race between
// two concurrent bookings that both pass the count.
func (r *AppointmentRepository) Book(ctx context.Context, a *domain.Appointment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&appointmentModel{}).
			Where("vehicle_id = ? AND scheduled_at = ? AND status <> ?",
				a.VehicleID, a.ScheduledAt, string(domain.AppointmentCancelled)).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotTaken
		}

		m := appointmentModel{
			ClientID:    a.ClientID,
			VehicleID:   a.VehicleID,
			ServiceID:   a.ServiceID,
			ScheduledAt: a.ScheduledAt,
			Status:      string(a.Status),
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		a.ID = m.ID
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var m appointmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	a := toDomainAppointment(m)
	return &a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// AppointmentListing is an appointment joined with display fields for the
// client, vehicle and catalog service.
type AppointmentListing struct {
	ID                 int64                    `json:"id"`
	ScheduledAt        time.Time                `json:"scheduled_at"`
	Status             domain.AppointmentStatus `json:"status"`
	ClientName         string                   `json:"client_name"`
	VehiclePlate       string                   `json:"vehicle_plate"`
	VehicleMake        string                   `json:"vehicle_make"`
	VehicleModel       string                   `json:"vehicle_model"`
	ServiceDescription string                   `json:"service_description"`
}

func (r *AppointmentRepository) List(ctx context.Context) ([]AppointmentListing, error) {
	var rows []AppointmentListing
	q := `
SELECT a.id AS id,
       a.scheduled_at AS scheduled_at,
       a.status AS status,
       c.name AS client_name,
       v.plate AS vehicle_plate,
       v.make AS vehicle_make,
       v.model AS vehicle_model,
       s.description AS service_description
FROM appointments a
JOIN clients c ON c.id = a.client_id
JOIN vehicles v ON v.id = a.vehicle_id
JOIN catalog_services s ON s.id = a.service_id
ORDER BY a.scheduled_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

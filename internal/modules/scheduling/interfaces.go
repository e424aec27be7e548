package scheduling

import (
	"context"

	"mecanica/internal/domain"
	"mecanica/internal/repository"
)

type AppointmentRepository interface {
	Book(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	List(ctx context.Context) ([]repository.AppointmentListing, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

type CatalogServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CatalogService, error)
}

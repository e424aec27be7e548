package inventory

import (
	"context"

	"mecanica/internal/domain"
	"mecanica/internal/repository"
)

type StockMovementRepository interface {
	Record(ctx context.Context, mv *domain.StockMovement) (int, error)
	SumForPart(ctx context.Context, partID int64) (int, error)
	List(ctx context.Context, orderID, partID *int64) ([]repository.MovementListing, error)
}

type PartRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	DamagedByVehicle(ctx context.Context, vehicleID int64) ([]repository.DamagedPartRow, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

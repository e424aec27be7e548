package orders

import (
	"context"

	"mecanica/internal/domain"
	"mecanica/internal/repository"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.ServiceOrder) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	AddServiceItem(ctx context.Context, it *domain.OrderServiceItem) error
	AddPartItem(ctx context.Context, it *domain.OrderPartItem) error
	AddPayment(ctx context.Context, p *domain.Payment) error
	ListServiceItems(ctx context.Context, orderID int64) ([]domain.OrderServiceItem, error)
	ListPartItems(ctx context.Context, orderID int64) ([]domain.OrderPartItem, error)
	ListPayments(ctx context.Context, orderID int64) ([]domain.Payment, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.ServiceOrder, error)
	HistoryServiceLines(ctx context.Context, orderID int64) ([]repository.HistoryServiceLine, error)
	HistoryPartLines(ctx context.Context, orderID int64) ([]repository.HistoryPartLine, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

type CatalogServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CatalogService, error)
}

type PartRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
}

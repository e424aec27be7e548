package registry

import (
	"context"

	"mecanica/internal/domain"
	"mecanica/internal/repository"
)

type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
	Create(ctx context.Context, c *domain.Client) error
}

type VehicleRepository interface {
	List(ctx context.Context) ([]repository.VehicleListing, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Vehicle, error)
	ExistsByPlate(ctx context.Context, plate string) (bool, error)
	Create(ctx context.Context, v *domain.Vehicle) error
}

type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
}

type CatalogServiceRepository interface {
	List(ctx context.Context) ([]domain.CatalogService, error)
	ExistsByDescription(ctx context.Context, description string) (bool, error)
	Create(ctx context.Context, s *domain.CatalogService) error
}

type PartRepository interface {
	List(ctx context.Context) ([]domain.Part, error)
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	Create(ctx context.Context, p *domain.Part) error
}

type SupplierRepository interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
	Create(ctx context.Context, s *domain.Supplier) error
	AttachPart(ctx context.Context, supplierID, partID int64) error
	ListForPart(ctx context.Context, partID int64) ([]domain.Supplier, error)
}

package registry

import (
	"context"
	"strings"

	"mecanica/internal/domain"
	"mecanica/internal/repository"
)

// MovementRecorder appends a ledger entry. Part creation with an opening
// balance goes through the ledger so the cached stock never diverges from
// the movement history.
type MovementRecorder interface {
	Record(ctx context.Context, mv *domain.StockMovement) (int, error)
}

// Service owns the reference data (clients, vehicles, employees, catalog
// services, parts, suppliers) and the referential-integrity checks that
// guard their creation.
type Service struct {
	clients   ClientRepository
	vehicles  VehicleRepository
	employees EmployeeRepository
	services  CatalogServiceRepository
	parts     PartRepository
	suppliers SupplierRepository
	movements MovementRecorder
}

func NewService(
	clients ClientRepository,
	vehicles VehicleRepository,
	employees EmployeeRepository,
	services CatalogServiceRepository,
	parts PartRepository,
	suppliers SupplierRepository,
	movements MovementRecorder,
) *Service {
	return &Service{
		clients:   clients,
		vehicles:  vehicles,
		employees: employees,
		services:  services,
		parts:     parts,
		suppliers: suppliers,
		movements: movements,
	}
}

/* ---------- clients ---------- */

func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *Service) CreateClient(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	taxID := strings.TrimSpace(req.TaxID)
	if name == "" || taxID == "" {
		return nil, ErrValidation
	}

	taken, err := s.clients.ExistsByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateTaxID
	}

	c := &domain.Client{Name: name, TaxID: taxID}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

/* ---------- vehicles ---------- */

func (s *Service) ListVehicles(ctx context.Context) ([]repository.VehicleListing, error) {
	return s.vehicles.List(ctx)
}

func (s *Service) VehiclesOfClient(ctx context.Context, clientID int64) ([]domain.Vehicle, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, mapNotFound(err, ErrClientNotFound)
	}
	return s.vehicles.ListByClient(ctx, clientID)
}

func (s *Service) CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*domain.Vehicle, error) {
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	if plate == "" || req.ClientID == 0 {
		return nil, ErrValidation
	}

	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		return nil, mapNotFound(err, ErrClientNotFound)
	}

	taken, err := s.vehicles.ExistsByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicatePlate
	}

	v := &domain.Vehicle{
		Plate:    plate,
		Chassis:  strings.TrimSpace(req.Chassis),
		Odometer: req.Odometer,
		Make:     strings.TrimSpace(req.Make),
		Model:    strings.TrimSpace(req.Model),
		ClientID: req.ClientID,
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

/* ---------- employees ---------- */

func (s *Service) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	e := &domain.Employee{Name: name, Role: strings.TrimSpace(req.Role)}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

/* ---------- catalog services ---------- */

func (s *Service) ListServices(ctx context.Context) ([]domain.CatalogService, error) {
	return s.services.List(ctx)
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.CatalogService, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" || req.StandardPrice < 0 {
		return nil, ErrValidation
	}

	taken, err := s.services.ExistsByDescription(ctx, description)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateDescription
	}

	entry := &domain.CatalogService{Description: description, StandardPrice: req.StandardPrice}
	if err := s.services.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

/* ---------- parts ---------- */

func (s *Service) ListParts(ctx context.Context) ([]domain.Part, error) {
	return s.parts.List(ctx)
}

func (s *Service) CreatePart(ctx context.Context, req CreatePartRequest) (*domain.Part, error) {
	sku := strings.ToUpper(strings.TrimSpace(req.SKU))
	origin := domain.PartOrigin(strings.TrimSpace(req.Origin))
	if sku == "" || !origin.Valid() || req.InitialStock < 0 {
		return nil, ErrValidation
	}

	taken, err := s.parts.ExistsBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateSKU
	}

	p := &domain.Part{
		SKU:         sku,
		Description: strings.TrimSpace(req.Description),
		Origin:      origin,
	}
	if err := s.parts.Create(ctx, p); err != nil {
		return nil, err
	}

	// An opening balance is a ledger entry like any other stock change.
	if req.InitialStock > 0 {
		mv := &domain.StockMovement{
			PartID:   p.ID,
			Kind:     domain.MovementInbound,
			Quantity: req.InitialStock,
			Source:   "initial stock",
		}
		balance, err := s.movements.Record(ctx, mv)
		if err != nil {
			return nil, err
		}
		p.CurrentStock = balance
	}
	return p, nil
}

/* ---------- suppliers ---------- */

func (s *Service) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *Service) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	taxID := strings.TrimSpace(req.TaxID)
	if taxID != "" {
		taken, err := s.suppliers.ExistsByTaxID(ctx, taxID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateTaxID
		}
	}

	sup := &domain.Supplier{Name: name, TaxID: taxID}
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) AttachSupplierPart(ctx context.Context, supplierID, partID int64) error {
	if _, err := s.suppliers.GetByID(ctx, supplierID); err != nil {
		return mapNotFound(err, ErrSupplierNotFound)
	}
	if _, err := s.parts.GetByID(ctx, partID); err != nil {
		return mapNotFound(err, ErrPartNotFound)
	}
	return s.suppliers.AttachPart(ctx, supplierID, partID)
}

func (s *Service) SuppliersOfPart(ctx context.Context, partID int64) ([]domain.Supplier, error) {
	if _, err := s.parts.GetByID(ctx, partID); err != nil {
		return nil, mapNotFound(err, ErrPartNotFound)
	}
	return s.suppliers.ListForPart(ctx, partID)
}

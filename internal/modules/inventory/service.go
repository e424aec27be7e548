package inventory

import (
	"context"
	"errors"

	"mecanica/internal/domain"
	"mecanica/internal/repository"
)

// Service is the inventory ledger. Every stock change is an append-only
// movement; the part's cached counter is a projection recomputed from the
// movement history, never trusted as the source of truth.
type Service struct {
	movements StockMovementRepository
	parts     PartRepository
	orders    OrderRepository
	vehicles  VehicleRepository
}

func NewService(
	movements StockMovementRepository,
	parts PartRepository,
	orders OrderRepository,
	vehicles VehicleRepository,
) *Service {
	return &Service{
		movements: movements,
		parts:     parts,
		orders:    orders,
		vehicles:  vehicles,
	}
}

// RecordMovement validates and appends one ledger entry. Quantity is the
// positive magnitude for every kind; adjustments carry their direction in
// Delta. An outbound or negative adjustment that would drive the projected
// balance below zero is rejected and leaves the ledger untouched.
func (s *Service) RecordMovement(ctx context.Context, req RecordMovementRequest) (*domain.StockMovement, int, error) {
	kind := domain.MovementKind(req.Kind)
	if !kind.Valid() {
		return nil, 0, ErrValidation
	}

	mv := &domain.StockMovement{
		PartID:   req.PartID,
		OrderID:  req.OrderID,
		Kind:     kind,
		Quantity: req.Quantity,
		Delta:    req.Delta,
		Source:   req.Source,
		UnitCost: req.UnitCost,
	}

	switch kind {
	case domain.MovementAdjustment:
		if req.Delta == 0 {
			return nil, 0, ErrValidation
		}
		mv.Quantity = req.Delta
		if mv.Quantity < 0 {
			mv.Quantity = -mv.Quantity
		}
	default:
		if req.Quantity <= 0 {
			return nil, 0, ErrValidation
		}
		mv.Delta = 0
	}

	if _, err := s.parts.GetByID(ctx, req.PartID); err != nil {
		return nil, 0, mapNotFound(err, ErrPartNotFound)
	}
	if req.OrderID != nil {
		if _, err := s.orders.GetByID(ctx, *req.OrderID); err != nil {
			return nil, 0, mapNotFound(err, ErrOrderNotFound)
		}
	}

	balance, err := s.movements.Record(ctx, mv)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, 0, ErrInsufficientStock
		}
		return nil, 0, mapNotFound(err, ErrPartNotFound)
	}
	return mv, balance, nil
}

// CurrentStock is the signed sum of every movement recorded for the part.
func (s *Service) CurrentStock(ctx context.Context, partID int64) (*StockBalance, error) {
	if _, err := s.parts.GetByID(ctx, partID); err != nil {
		return nil, mapNotFound(err, ErrPartNotFound)
	}
	sum, err := s.movements.SumForPart(ctx, partID)
	if err != nil {
		return nil, err
	}
	return &StockBalance{PartID: partID, Balance: sum}, nil
}

func (s *Service) ListMovements(ctx context.Context, orderID, partID *int64) ([]repository.MovementListing, error) {
	return s.movements.List(ctx, orderID, partID)
}

// DamagedPartsReport aggregates every part line item across every order of
// the vehicle, grouped by part and ordered by description. Read-only.
func (s *Service) DamagedPartsReport(ctx context.Context, vehicleID int64) (*DamagedPartsReport, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return nil, mapNotFound(err, ErrVehicleNotFound)
	}
	rows, err := s.parts.DamagedByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return &DamagedPartsReport{VehicleID: vehicleID, Parts: rows}, nil
}

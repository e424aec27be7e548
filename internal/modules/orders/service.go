package orders

import (
	"context"
	"math"

	"mecanica/internal/domain"
)

// Service computes derived views over a service order's children and owns
// the order status machine. It never mutates items or payments once added;
// totals and history are read-only aggregations.
type Service struct {
	orders    OrderRepository
	vehicles  VehicleRepository
	employees EmployeeRepository
	services  CatalogServiceRepository
	parts     PartRepository
}

func NewService(
	orders OrderRepository,
	vehicles VehicleRepository,
	employees EmployeeRepository,
	services CatalogServiceRepository,
	parts PartRepository,
) *Service {
	return &Service{
		orders:    orders,
		vehicles:  vehicles,
		employees: employees,
		services:  services,
		parts:     parts,
	}
}

func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.ServiceOrder, error) {
	if req.IntakeOdometer < 0 {
		return nil, ErrValidation
	}
	if _, err := s.vehicles.GetByID(ctx, req.VehicleID); err != nil {
		return nil, mapNotFound(err, ErrVehicleNotFound)
	}
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, mapNotFound(err, ErrEmployeeNotFound)
	}

	o := &domain.ServiceOrder{
		VehicleID:       req.VehicleID,
		EmployeeID:      req.EmployeeID,
		Status:          domain.OrderOpen,
		ReportedProblem: req.ReportedProblem,
		IntakeOdometer:  req.IntakeOdometer,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrOrderNotFound)
	}
	return o, nil
}

// editableOrder loads the order and verifies it still accepts children.
func (s *Service) editableOrder(ctx context.Context, orderID int64) (*domain.ServiceOrder, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err, ErrOrderNotFound)
	}
	if o.Status != domain.OrderOpen && o.Status != domain.OrderInProgress {
		return nil, ErrOrderNotEditable
	}
	return o, nil
}

func (s *Service) AddServiceItem(ctx context.Context, orderID int64, req AddServiceItemRequest) (*domain.OrderServiceItem, error) {
	if req.Quantity <= 0 || req.UnitPrice < 0 {
		return nil, ErrValidation
	}
	if _, err := s.editableOrder(ctx, orderID); err != nil {
		return nil, err
	}

	entry, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, mapNotFound(err, ErrServiceNotFound)
	}

	price := req.UnitPrice
	if price == 0 {
		price = entry.StandardPrice
	}

	it := &domain.OrderServiceItem{
		OrderID:   orderID,
		ServiceID: req.ServiceID,
		Quantity:  req.Quantity,
		UnitPrice: price,
	}
	if err := s.orders.AddServiceItem(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) AddPartItem(ctx context.Context, orderID int64, req AddPartItemRequest) (*domain.OrderPartItem, error) {
	if req.Quantity <= 0 || req.UnitPrice < 0 {
		return nil, ErrValidation
	}
	if _, err := s.editableOrder(ctx, orderID); err != nil {
		return nil, err
	}
	if _, err := s.parts.GetByID(ctx, req.PartID); err != nil {
		return nil, mapNotFound(err, ErrPartNotFound)
	}

	it := &domain.OrderPartItem{
		OrderID:   orderID,
		PartID:    req.PartID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}
	if err := s.orders.AddPartItem(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) AddPayment(ctx context.Context, orderID int64, req AddPaymentRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrValidation
	}
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err, ErrOrderNotFound)
	}
	// Payments may arrive after the order closes, but never on a cancelled one.
	if o.Status == domain.OrderCancelled {
		return nil, ErrOrderNotEditable
	}

	p := &domain.Payment{
		OrderID: orderID,
		Method:  req.Method,
		Amount:  req.Amount,
	}
	if err := s.orders.AddPayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// OrderTotals sums quantity times unit price over both item kinds and the
// recorded payments. Partial payment and overpayment are representable;
// the balance is informational only.
func (s *Service) OrderTotals(ctx context.Context, orderID int64) (*OrderTotals, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, mapNotFound(err, ErrOrderNotFound)
	}

	serviceItems, err := s.orders.ListServiceItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	partItems, err := s.orders.ListPartItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	payments, err := s.orders.ListPayments(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, it := range serviceItems {
		total += float64(it.Quantity) * it.UnitPrice
	}
	for _, it := range partItems {
		total += float64(it.Quantity) * it.UnitPrice
	}

	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}

	return &OrderTotals{
		OrderID: orderID,
		Total:   round2(total),
		Paid:    round2(paid),
		Balance: round2(total - paid),
	}, nil
}

// VehicleHistory assembles order snapshots for one vehicle, newest order
// first. Identifiers are assigned monotonically, so descending ID is a
// stable proxy for creation order.
func (s *Service) VehicleHistory(ctx context.Context, vehicleID int64) (*VehicleHistory, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return nil, mapNotFound(err, ErrVehicleNotFound)
	}

	rows, err := s.orders.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	history := &VehicleHistory{VehicleID: vehicleID, Orders: make([]OrderSnapshot, 0, len(rows))}
	for _, o := range rows {
		services, err := s.orders.HistoryServiceLines(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		parts, err := s.orders.HistoryPartLines(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		payments, err := s.orders.ListPayments(ctx, o.ID)
		if err != nil {
			return nil, err
		}

		responsible := ""
		if emp, err := s.employees.GetByID(ctx, o.EmployeeID); err == nil {
			responsible = emp.Name
		}

		history.Orders = append(history.Orders, OrderSnapshot{
			ID:              o.ID,
			Status:          o.Status,
			IntakeOdometer:  o.IntakeOdometer,
			ReportedProblem: o.ReportedProblem,
			CreatedAt:       o.CreatedAt,
			Services:        services,
			Parts:           parts,
			Payments:        payments,
			Responsible:     responsible,
		})
	}
	return history, nil
}

// AdvanceStatus applies one transition of the order lifecycle:
// open -> in_progress -> closed, cancellation from any non-terminal state.
func (s *Service) AdvanceStatus(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.ServiceOrder, error) {
	if !next.Valid() {
		return nil, ErrValidation
	}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err, ErrOrderNotFound)
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

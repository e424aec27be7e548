package scheduling

import (
	"context"
	"errors"

	"mecanica/internal/domain"
	"mecanica/internal/repository"
)

// Service is the scheduling conflict guard: it validates that the booking
// references agree with each other and that the slot is free before any
// appointment row is written.
type Service struct {
	appointments AppointmentRepository
	vehicles     VehicleRepository
	services     CatalogServiceRepository
}

func NewService(
	appointments AppointmentRepository,
	vehicles VehicleRepository,
	services CatalogServiceRepository,
) *Service {
	return &Service{
		appointments: appointments,
		vehicles:     vehicles,
		services:     services,
	}
}

// CreateAppointment books a slot for a vehicle. The referenced vehicle must
// belong to the claimed client; an existing non-cancelled appointment for
// the same vehicle at the exact same timestamp is a conflict.
func (s *Service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	if req.ScheduledAt.IsZero() {
		return nil, ErrValidation
	}

	v, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, mapNotFound(err, ErrVehicleNotFound)
	}
	if v.ClientID != req.ClientID {
		return nil, ErrOwnershipMismatch
	}

	if _, err := s.services.GetByID(ctx, req.ServiceID); err != nil {
		return nil, mapNotFound(err, ErrServiceNotFound)
	}

	a := &domain.Appointment{
		ClientID:    req.ClientID,
		VehicleID:   req.VehicleID,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		Status:      domain.AppointmentPending,
	}
	if err := s.appointments.Book(ctx, a); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]repository.AppointmentListing, error) {
	return s.appointments.List(ctx)
}

// UpdateStatus applies one transition of the appointment state machine.
// Cancelled rows stay on record but release their slot.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next domain.AppointmentStatus) (*domain.Appointment, error) {
	if !next.Valid() {
		return nil, ErrValidation
	}

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	if !a.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.appointments.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	a.Status = next
	return a, nil
}

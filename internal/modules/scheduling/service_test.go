package scheduling

import (
	"context"
	"testing"
	"time"

	"mecanica/internal/domain"
	"mecanica/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Book(ctx context.Context, a *domain.Appointment) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		a.ID = 101
	}
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) List(ctx context.Context) ([]repository.AppointmentListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AppointmentListing), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type MockCatalogServiceRepository struct {
	mock.Mock
}

func (m *MockCatalogServiceRepository) GetByID(ctx context.Context, id int64) (*domain.CatalogService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogService), args.Error(1)
}

func newTestService() (*Service, *MockAppointmentRepository, *MockVehicleRepository, *MockCatalogServiceRepository) {
	appts := new(MockAppointmentRepository)
	vehicles := new(MockVehicleRepository)
	services := new(MockCatalogServiceRepository)
	return NewService(appts, vehicles, services), appts, vehicles, services
}

func TestCreateAppointment_Success(t *testing.T) {
	svc, appts, vehicles, services := newTestService()

	at := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	vehicles.On("GetByID", mock.Anything, int64(7)).Return(&domain.Vehicle{ID: 7, ClientID: 3}, nil)
	services.On("GetByID", mock.Anything, int64(2)).Return(&domain.CatalogService{ID: 2}, nil)
	appts.On("Book", mock.Anything, mock.Anything).Return(nil)

	a, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID: 3, VehicleID: 7, ServiceID: 2, ScheduledAt: at,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentPending, a.Status)
	assert.Equal(t, at, a.ScheduledAt)
	appts.AssertExpectations(t)
}

func TestCreateAppointment_VehicleNotFound(t *testing.T) {
	svc, _, vehicles, _ := newTestService()

	vehicles.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID: 3, VehicleID: 99, ServiceID: 2, ScheduledAt: time.Now().Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestCreateAppointment_OwnershipMismatch(t *testing.T) {
	svc, _, vehicles, _ := newTestService()

	vehicles.On("GetByID", mock.Anything, int64(7)).Return(&domain.Vehicle{ID: 7, ClientID: 4}, nil)

	_, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID: 3, VehicleID: 7, ServiceID: 2, ScheduledAt: time.Now().Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrOwnershipMismatch)
}

func TestCreateAppointment_SlotTaken(t *testing.T) {
	svc, appts, vehicles, services := newTestService()

	vehicles.On("GetByID", mock.Anything, int64(7)).Return(&domain.Vehicle{ID: 7, ClientID: 3}, nil)
	services.On("GetByID", mock.Anything, int64(2)).Return(&domain.CatalogService{ID: 2}, nil)
	appts.On("Book", mock.Anything, mock.Anything).Return(repository.ErrSlotTaken)

	_, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID: 3, VehicleID: 7, ServiceID: 2, ScheduledAt: time.Now().Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdateStatus_ConfirmPending(t *testing.T) {
	svc, appts, _, _ := newTestService()

	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, Status: domain.AppointmentPending}, nil)
	appts.On("UpdateStatus", mock.Anything, int64(5), domain.AppointmentConfirmed).Return(nil)

	a, err := svc.UpdateStatus(context.Background(), 5, domain.AppointmentConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentConfirmed, a.Status)
}

func TestUpdateStatus_CancelConfirmed(t *testing.T) {
	svc, appts, _, _ := newTestService()

	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, Status: domain.AppointmentConfirmed}, nil)
	appts.On("UpdateStatus", mock.Anything, int64(5), domain.AppointmentCancelled).Return(nil)

	a, err := svc.UpdateStatus(context.Background(), 5, domain.AppointmentCancelled)

	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentCancelled, a.Status)
}

func TestUpdateStatus_CompletedIsTerminal(t *testing.T) {
	svc, appts, _, _ := newTestService()

	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, Status: domain.AppointmentCompleted}, nil)

	_, err := svc.UpdateStatus(context.Background(), 5, domain.AppointmentCancelled)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_NoSkippingConfirmation(t *testing.T) {
	svc, appts, _, _ := newTestService()

	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, Status: domain.AppointmentPending}, nil)

	_, err := svc.UpdateStatus(context.Background(), 5, domain.AppointmentCompleted)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 5, domain.AppointmentStatus("archived"))

	assert.ErrorIs(t, err, ErrValidation)
}

package inventory

import (
	"context"
	"testing"

	"mecanica/internal/domain"
	"mecanica/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Record(ctx context.Context, mv *domain.StockMovement) (int, error) {
	args := m.Called(ctx, mv)
	return args.Int(0), args.Error(1)
}

func (m *MockStockMovementRepository) SumForPart(ctx context.Context, partID int64) (int, error) {
	args := m.Called(ctx, partID)
	return args.Int(0), args.Error(1)
}

func (m *MockStockMovementRepository) List(ctx context.Context, orderID, partID *int64) ([]repository.MovementListing, error) {
	args := m.Called(ctx, orderID, partID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MovementListing), args.Error(1)
}

type MockPartRepository struct {
	mock.Mock
}

func (m *MockPartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *MockPartRepository) DamagedByVehicle(ctx context.Context, vehicleID int64) ([]repository.DamagedPartRow, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DamagedPartRow), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
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

func newTestService() (*Service, *MockStockMovementRepository, *MockPartRepository, *MockOrderRepository, *MockVehicleRepository) {
	movements := new(MockStockMovementRepository)
	parts := new(MockPartRepository)
	orders := new(MockOrderRepository)
	vehicles := new(MockVehicleRepository)
	return NewService(movements, parts, orders, vehicles), movements, parts, orders, vehicles
}

func TestRecordMovement_Inbound(t *testing.T) {
	svc, movements, parts, _, _ := newTestService()

	parts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Part{ID: 1}, nil)
	movements.On("Record", mock.Anything, mock.MatchedBy(func(mv *domain.StockMovement) bool {
		return mv.Kind == domain.MovementInbound && mv.Quantity == 10 && mv.Delta == 0
	})).Return(10, nil)

	mv, balance, err := svc.RecordMovement(context.Background(), RecordMovementRequest{
		PartID: 1, Kind: "inbound", Quantity: 10, Source: "Compra fornecedor",
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, balance)
	assert.Equal(t, 10, mv.Quantity)
	movements.AssertExpectations(t)
}

func TestRecordMovement_UnknownKind(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, _, err := svc.RecordMovement(context.Background(), RecordMovementRequest{
		PartID: 1, Kind: "transfer", Quantity: 1,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordMovement_NonPositiveQuantity(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	for _, qty := range []int{0, -3} {
		_, _, err := svc.RecordMovement(context.Background(), RecordMovementRequest{
			PartID: 1, Kind: "outbound", Quantity: qty,
		})
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestRecordMovement_AdjustmentRequiresDelta(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, _, err := svc.RecordMovement(context.Background(), RecordMovementRequest{
		PartID: 1, Kind: "adjustment", Delta: 0,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordMovement_NegativeAdjustmentKeepsMagnitude(t *testing.T) {
	svc, movements, parts, _, _ := newTestService()

	parts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Part{ID: 1}, nil)
	movements.On("Record", mock.Anything, mock.MatchedBy(func(mv *domain.StockMovement) bool {
		return mv.Kind == domain.MovementAdjustment && mv.Quantity == 4 && mv.Delta == -4
	})).Return(6, nil)

	mv, balance, err := svc.RecordMovement(context.Background(), RecordMovementRequest{
		PartID: 1, Kind: "adjustment", Delta: -4, Source: "Contagem de inventário",
	})

	assert.NoError(t, err)
	assert.Equal(t, 6, balance)
	assert.Equal(t, 4, mv.Quantity)
	assert.Equal(t, -4, mv.Delta)
}

func TestRecordMovement_PartNotFound(t *testing.T) {
	svc, _, parts, _, _ := newTestService()

	parts.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.RecordMovement(context.Background(), RecordMovementRequest{
		PartID: 99, Kind: "inbound", Quantity: 5,
	})

	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestRecordMovement_UnknownOrder(t *testing.T) {
	svc, _, parts, orders, _ := newTestService()

	orderID := int64(77)
	parts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Part{ID: 1}, nil)
	orders.On("GetByID", mock.Anything, orderID).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.RecordMovement(context.Background(), RecordMovementRequest{
		PartID: 1, Kind: "outbound", Quantity: 2, OrderID: &orderID,
	})

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestRecordMovement_InsufficientStock(t *testing.T) {
	svc, movements, parts, _, _ := newTestService()

	parts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Part{ID: 1}, nil)
	movements.On("Record", mock.Anything, mock.Anything).Return(0, repository.ErrInsufficientStock)

	_, _, err := svc.RecordMovement(context.Background(), RecordMovementRequest{
		PartID: 1, Kind: "outbound", Quantity: 6,
	})

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCurrentStock(t *testing.T) {
	svc, movements, parts, _, _ := newTestService()

	parts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Part{ID: 1}, nil)
	movements.On("SumForPart", mock.Anything, int64(1)).Return(17, nil)

	balance, err := svc.CurrentStock(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 17, balance.Balance)
}

func TestDamagedPartsReport_VehicleNotFound(t *testing.T) {
	svc, _, _, _, vehicles := newTestService()

	vehicles.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.DamagedPartsReport(context.Background(), 42)

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestDamagedPartsReport_GroupedRows(t *testing.T) {
	svc, _, parts, _, vehicles := newTestService()

	vehicles.On("GetByID", mock.Anything, int64(3)).Return(&domain.Vehicle{ID: 3}, nil)
	parts.On("DamagedByVehicle", mock.Anything, int64(3)).Return([]repository.DamagedPartRow{
		{PartID: 1, SKU: "OL-10W40", Description: "Óleo 10W40", TotalQuantity: 5},
	}, nil)

	report, err := svc.DamagedPartsReport(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, report.Parts, 1)
	assert.Equal(t, 5, report.Parts[0].TotalQuantity)
}

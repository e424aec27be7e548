package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mecanica/internal/database"
	"mecanica/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

type fixtures struct {
	db        *gorm.DB
	clients   *ClientRepository
	vehicles  *VehicleRepository
	employees *EmployeeRepository
	services  *CatalogServiceRepository
	parts     *PartRepository
	orders    *OrderRepository
	movements *StockMovementRepository
	appts     *AppointmentRepository
}

func newFixtures(t *testing.T) *fixtures {
	db := testDB(t)
	return &fixtures{
		db:        db,
		clients:   NewClientRepository(db),
		vehicles:  NewVehicleRepository(db),
		employees: NewEmployeeRepository(db),
		services:  NewCatalogServiceRepository(db),
		parts:     NewPartRepository(db),
		orders:    NewOrderRepository(db),
		movements: NewStockMovementRepository(db),
		appts:     NewAppointmentRepository(db),
	}
}

func (f *fixtures) client(t *testing.T, name, taxID string) *domain.Client {
	t.Helper()
	c := &domain.Client{Name: name, TaxID: taxID}
	require.NoError(t, f.clients.Create(context.Background(), c))
	return c
}

func (f *fixtures) vehicle(t *testing.T, plate string, clientID int64) *domain.Vehicle {
	t.Helper()
	v := &domain.Vehicle{Plate: plate, Make: "VW", Model: "Gol", ClientID: clientID}
	require.NoError(t, f.vehicles.Create(context.Background(), v))
	return v
}

func (f *fixtures) part(t *testing.T, sku, description string) *domain.Part {
	t.Helper()
	p := &domain.Part{SKU: sku, Description: description, Origin: domain.OriginDomestic}
	require.NoError(t, f.parts.Create(context.Background(), p))
	return p
}

func (f *fixtures) order(t *testing.T, vehicleID, employeeID int64) *domain.ServiceOrder {
	t.Helper()
	o := &domain.ServiceOrder{VehicleID: vehicleID, EmployeeID: employeeID, Status: domain.OrderOpen}
	require.NoError(t, f.orders.Create(context.Background(), o))
	return o
}

func (f *fixtures) employee(t *testing.T, name string) *domain.Employee {
	t.Helper()
	e := &domain.Employee{Name: name, Role: "Mecânico"}
	require.NoError(t, f.employees.Create(context.Background(), e))
	return e
}

func (f *fixtures) record(t *testing.T, mv *domain.StockMovement) int {
	t.Helper()
	balance, err := f.movements.Record(context.Background(), mv)
	require.NoError(t, err)
	return balance
}

func TestStockLedger_BalanceIsSumOfMovements(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	p := f.part(t, "OL-10W40", "Óleo 10W40")

	balance := f.record(t, &domain.StockMovement{PartID: p.ID, Kind: domain.MovementInbound, Quantity: 5})
	assert.Equal(t, 5, balance)

	balance = f.record(t, &domain.StockMovement{PartID: p.ID, Kind: domain.MovementOutbound, Quantity: 2})
	assert.Equal(t, 3, balance)

	balance = f.record(t, &domain.StockMovement{PartID: p.ID, Kind: domain.MovementAdjustment, Quantity: 1, Delta: -1})
	assert.Equal(t, 2, balance)

	sum, err := f.movements.SumForPart(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, sum)

	// The cached counter must track the ledger.
	got, err := f.parts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStock)
}

func TestStockLedger_InsufficientStockLeavesLedgerUntouched(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	p := f.part(t, "PAST-FREIO-1", "Pastilha de freio")

	f.record(t, &domain.StockMovement{PartID: p.ID, Kind: domain.MovementInbound, Quantity: 5})

	_, err := f.movements.Record(ctx, &domain.StockMovement{PartID: p.ID, Kind: domain.MovementOutbound, Quantity: 6})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	sum, err := f.movements.SumForPart(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, sum)

	rows, err := f.movements.List(ctx, nil, &p.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	got, err := f.parts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.CurrentStock)
}

func TestStockLedger_NegativeAdjustmentBelowZeroRejected(t *testing.T) {
	f := newFixtures(t)
	p := f.part(t, "BATE-12V", "Bateria 12V")

	f.record(t, &domain.StockMovement{PartID: p.ID, Kind: domain.MovementInbound, Quantity: 3})

	_, err := f.movements.Record(context.Background(), &domain.StockMovement{
		PartID: p.ID, Kind: domain.MovementAdjustment, Quantity: 4, Delta: -4,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestStockLedger_ListFilters(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	c := f.client(t, "João da Silva", "123.456.789-00")
	v := f.vehicle(t, "ABC-1234", c.ID)
	e := f.employee(t, "Pedro Mecânico")
	o := f.order(t, v.ID, e.ID)
	p1 := f.part(t, "OL-10W40", "Óleo 10W40")
	p2 := f.part(t, "FILT-OLEO-1", "Filtro de óleo")

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	f.record(t, &domain.StockMovement{PartID: p1.ID, Kind: domain.MovementInbound, Quantity: 10, OccurredAt: base})
	f.record(t, &domain.StockMovement{PartID: p2.ID, Kind: domain.MovementInbound, Quantity: 8, OccurredAt: base.Add(time.Hour)})
	f.record(t, &domain.StockMovement{PartID: p1.ID, Kind: domain.MovementOutbound, Quantity: 2, OrderID: &o.ID, OccurredAt: base.Add(2 * time.Hour)})

	all, err := f.movements.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recent first.
	assert.Equal(t, domain.MovementOutbound, all[0].Kind)

	byPart, err := f.movements.List(ctx, nil, &p1.ID)
	require.NoError(t, err)
	assert.Len(t, byPart, 2)

	byOrder, err := f.movements.List(ctx, &o.ID, nil)
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	assert.Equal(t, p1.ID, byOrder[0].PartID)
	assert.Equal(t, "OL-10W40", byOrder[0].PartSKU)
}

func TestVehicle_DuplicatePlateRejectedByIndex(t *testing.T) {
	f := newFixtures(t)
	c := f.client(t, "Maria Santos", "987.654.321-11")
	f.vehicle(t, "XYZ-9999", c.ID)

	err := f.vehicles.Create(context.Background(), &domain.Vehicle{Plate: "XYZ-9999", ClientID: c.ID})
	assert.Error(t, err)
}

func TestAppointments_ExactSlotConflictAndRebookAfterCancel(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	c := f.client(t, "Pedro Oliveira", "456.789.123-22")
	v := f.vehicle(t, "GHI-2020", c.ID)
	svc := &domain.CatalogService{Description: "Troca de óleo", StandardPrice: 120}
	require.NoError(t, f.services.Create(ctx, svc))

	at := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	first := &domain.Appointment{ClientID: c.ID, VehicleID: v.ID, ServiceID: svc.ID, ScheduledAt: at, Status: domain.AppointmentPending}
	require.NoError(t, f.appts.Book(ctx, first))

	second := &domain.Appointment{ClientID: c.ID, VehicleID: v.ID, ServiceID: svc.ID, ScheduledAt: at, Status: domain.AppointmentPending}
	assert.ErrorIs(t, f.appts.Book(ctx, second), ErrSlotTaken)

	// A different timestamp for the same vehicle is not a conflict.
	other := &domain.Appointment{ClientID: c.ID, VehicleID: v.ID, ServiceID: svc.ID, ScheduledAt: at.Add(time.Hour), Status: domain.AppointmentPending}
	assert.NoError(t, f.appts.Book(ctx, other))

	// Cancelling frees the slot.
	require.NoError(t, f.appts.UpdateStatus(ctx, first.ID, domain.AppointmentCancelled))
	rebooked := &domain.Appointment{ClientID: c.ID, VehicleID: v.ID, ServiceID: svc.ID, ScheduledAt: at, Status: domain.AppointmentPending}
	assert.NoError(t, f.appts.Book(ctx, rebooked))
}

func TestDamagedByVehicle_GroupsAcrossOrders(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	c := f.client(t, "Oficina XPTO Ltda", "12.345.678/0001-99")
	v := f.vehicle(t, "PQR-5050", c.ID)
	e := f.employee(t, "Fabio Elétrica")
	pad := f.part(t, "PAST-FREIO-1", "Pastilha de freio")
	oil := f.part(t, "OL-10W40", "Óleo 10W40")

	o1 := f.order(t, v.ID, e.ID)
	o2 := f.order(t, v.ID, e.ID)
	require.NoError(t, f.orders.AddPartItem(ctx, &domain.OrderPartItem{OrderID: o1.ID, PartID: pad.ID, Quantity: 2, UnitPrice: 80}))
	require.NoError(t, f.orders.AddPartItem(ctx, &domain.OrderPartItem{OrderID: o2.ID, PartID: pad.ID, Quantity: 3, UnitPrice: 80}))
	require.NoError(t, f.orders.AddPartItem(ctx, &domain.OrderPartItem{OrderID: o2.ID, PartID: oil.ID, Quantity: 1, UnitPrice: 50}))

	rows, err := f.parts.DamagedByVehicle(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by part description; quantities grouped across orders.
	assert.Equal(t, "Pastilha de freio", rows[0].Description)
	assert.Equal(t, 5, rows[0].TotalQuantity)
	assert.Equal(t, "Óleo 10W40", rows[1].Description)
	assert.Equal(t, 1, rows[1].TotalQuantity)
}

func TestOrders_HistoryNewestFirst(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	c := f.client(t, "Transportadora ABC", "98.765.432/0001-88")
	v := f.vehicle(t, "EFG-1111", c.ID)
	e := f.employee(t, "Mariana Gerente")

	o1 := f.order(t, v.ID, e.ID)
	o2 := f.order(t, v.ID, e.ID)
	o3 := f.order(t, v.ID, e.ID)

	rows, err := f.orders.ListByVehicle(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, o3.ID, rows[0].ID)
	assert.Equal(t, o2.ID, rows[1].ID)
	assert.Equal(t, o1.ID, rows[2].ID)
}

func TestOrders_HistoryLinesJoinDisplayFields(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	c := f.client(t, "João da Silva", "123.456.789-00")
	v := f.vehicle(t, "ABC-1234", c.ID)
	e := f.employee(t, "Pedro Mecânico")
	o := f.order(t, v.ID, e.ID)

	svc := &domain.CatalogService{Description: "Alinhamento", StandardPrice: 150}
	require.NoError(t, f.services.Create(ctx, svc))
	p := f.part(t, "PNEU-185", "Pneu 185/65R15")

	require.NoError(t, f.orders.AddServiceItem(ctx, &domain.OrderServiceItem{OrderID: o.ID, ServiceID: svc.ID, Quantity: 1, UnitPrice: 150}))
	require.NoError(t, f.orders.AddPartItem(ctx, &domain.OrderPartItem{OrderID: o.ID, PartID: p.ID, Quantity: 4, UnitPrice: 320}))

	serviceLines, err := f.orders.HistoryServiceLines(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, serviceLines, 1)
	assert.Equal(t, "Alinhamento", serviceLines[0].Description)

	partLines, err := f.orders.HistoryPartLines(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, partLines, 1)
	assert.Equal(t, "PNEU-185", partLines[0].SKU)
	assert.Equal(t, 4, partLines[0].Quantity)
}

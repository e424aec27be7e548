package repository

import (
	"context"
	"time"

	"mecanica/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type serviceOrderModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	VehicleID       int64     `gorm:"column:vehicle_id;not null;index"`
	EmployeeID      int64     `gorm:"column:employee_id;not null"`
	Status          string    `gorm:"column:status;size:16;not null"`
	ReportedProblem string    `gorm:"column:reported_problem;type:text"`
	IntakeOdometer  int64     `gorm:"column:intake_odometer"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (serviceOrderModel) TableName() string { return "service_orders" }

type orderServiceItemModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	OrderID   int64   `gorm:"column:order_id;not null;index"`
	ServiceID int64   `gorm:"column:service_id;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
	UnitPrice float64 `gorm:"column:unit_price;not null"`
}

func (orderServiceItemModel) TableName() string { return "order_service_items" }

type orderPartItemModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	OrderID   int64   `gorm:"column:order_id;not null;index"`
	PartID    int64   `gorm:"column:part_id;not null;index"`
	Quantity  int     `gorm:"column:quantity;not null"`
	UnitPrice float64 `gorm:"column:unit_price;not null"`
}

func (orderPartItemModel) TableName() string { return "order_part_items" }

type paymentModel struct {
	ID      int64     `gorm:"column:id;primaryKey"`
	OrderID int64     `gorm:"column:order_id;not null;index"`
	PaidAt  time.Time `gorm:"column:paid_at"`
	Method  string    `gorm:"column:method;size:40"`
	Amount  float64   `gorm:"column:amount;not null"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainOrder(m serviceOrderModel) domain.ServiceOrder {
	return domain.ServiceOrder{
		ID:              m.ID,
		VehicleID:       m.VehicleID,
		EmployeeID:      m.EmployeeID,
		Status:          domain.OrderStatus(m.Status),
		ReportedProblem: m.ReportedProblem,
		IntakeOdometer:  m.IntakeOdometer,
		CreatedAt:       m.CreatedAt,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.ServiceOrder) error {
	m := serviceOrderModel{
		VehicleID:       o.VehicleID,
		EmployeeID:      o.EmployeeID,
		Status:          string(o.Status),
		ReportedProblem: o.ReportedProblem,
		IntakeOdometer:  o.IntakeOdometer,
		CreatedAt:       time.Now(),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	o.ID = m.ID
	o.CreatedAt = m.CreatedAt
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	var m serviceOrderModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	o := toDomainOrder(m)
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&serviceOrderModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *OrderRepository) AddServiceItem(ctx context.Context, it *domain.OrderServiceItem) error {
	m := orderServiceItemModel{
		OrderID:   it.OrderID,
		ServiceID: it.ServiceID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	it.ID = m.ID
	return nil
}

func (r *OrderRepository) AddPartItem(ctx context.Context, it *domain.OrderPartItem) error {
	m := orderPartItemModel{
		OrderID:   it.OrderID,
		PartID:    it.PartID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	it.ID = m.ID
	return nil
}

func (r *OrderRepository) AddPayment(ctx context.Context, p *domain.Payment) error {
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	m := paymentModel{
		OrderID: p.OrderID,
		PaidAt:  p.PaidAt,
		Method:  p.Method,
		Amount:  p.Amount,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	p.ID = m.ID
	return nil
}

func (r *OrderRepository) ListServiceItems(ctx context.Context, orderID int64) ([]domain.OrderServiceItem, error) {
	var rows []orderServiceItemModel
	tx := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.OrderServiceItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.OrderServiceItem{
			ID: m.ID, OrderID: m.OrderID, ServiceID: m.ServiceID,
			Quantity: m.Quantity, UnitPrice: m.UnitPrice,
		})
	}
	return out, nil
}

func (r *OrderRepository) ListPartItems(ctx context.Context, orderID int64) ([]domain.OrderPartItem, error) {
	var rows []orderPartItemModel
	tx := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.OrderPartItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.OrderPartItem{
			ID: m.ID, OrderID: m.OrderID, PartID: m.PartID,
			Quantity: m.Quantity, UnitPrice: m.UnitPrice,
		})
	}
	return out, nil
}

func (r *OrderRepository) ListPayments(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	var rows []paymentModel
	tx := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Payment{
			ID: m.ID, OrderID: m.OrderID, PaidAt: m.PaidAt,
			Method: m.Method, Amount: m.Amount,
		})
	}
	return out, nil
}

// HistoryServiceLine / HistoryPartLine carry the display fields the vehicle
// history report shows for each order line.
type HistoryServiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type HistoryPartLine struct {
	SKU         string            `json:"sku"`
	Description string            `json:"description"`
	Origin      domain.PartOrigin `json:"origin"`
	Quantity    int               `json:"quantity"`
	UnitPrice   float64           `json:"unit_price"`
}

func (r *OrderRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.ServiceOrder, error) {
	var rows []serviceOrderModel
	tx := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("id DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.ServiceOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) HistoryServiceLines(ctx context.Context, orderID int64) ([]HistoryServiceLine, error) {
	var rows []HistoryServiceLine
	q := `
SELECT s.description AS description,
       i.quantity AS quantity,
       i.unit_price AS unit_price
FROM order_service_items i
JOIN catalog_services s ON s.id = i.service_id
WHERE i.order_id = ?
ORDER BY i.id
`
	tx := r.db.WithContext(ctx).Raw(q, orderID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *OrderRepository) HistoryPartLines(ctx context.Context, orderID int64) ([]HistoryPartLine, error) {
	var rows []HistoryPartLine
	q := `
SELECT p.sku AS sku,
       p.description AS description,
       p.origin AS origin,
       i.quantity AS quantity,
       i.unit_price AS unit_price
FROM order_part_items i
JOIN parts p ON p.id = i.part_id
WHERE i.order_id = ?
ORDER BY i.id
`
	tx := r.db.WithContext(ctx).Raw(q, orderID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

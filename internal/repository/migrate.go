package repository

import "gorm.io/gorm"

// Migrate creates the schema for every table this package owns, plus the
// partial unique index the booking race depends on. AutoMigrate cannot
// express a filtered index, so it is created explicitly; the syntax is
// accepted by both PostgreSQL and SQLite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&clientModel{},
		&vehicleModel{},
		&employeeModel{},
		&catalogServiceModel{},
		&partModel{},
		&supplierModel{},
		&supplierPartModel{},
		&serviceOrderModel{},
		&orderServiceItemModel{},
		&orderPartItemModel{},
		&paymentModel{},
		&stockMovementModel{},
		&appointmentModel{},
	); err != nil {
		return err
	}

	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON appointments (vehicle_id, scheduled_at)
WHERE status <> 'cancelled'
`).Error
}

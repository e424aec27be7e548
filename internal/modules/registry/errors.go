package registry

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrClientNotFound       = errors.New("client not found")
	ErrPartNotFound         = errors.New("part not found")
	ErrSupplierNotFound     = errors.New("supplier not found")
	ErrDuplicatePlate       = errors.New("vehicle plate already registered")
	ErrDuplicateTaxID       = errors.New("tax id already registered")
	ErrDuplicateSKU         = errors.New("part sku already registered")
	ErrDuplicateDescription = errors.New("service description already registered")
)

// mapNotFound turns the store's missing-row error into the module's own
// sentinel; any other failure passes through untouched.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

package inventory

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrPartNotFound      = errors.New("part not found")
	ErrOrderNotFound     = errors.New("service order not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

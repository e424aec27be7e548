package orders

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrOrderNotFound     = errors.New("service order not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrServiceNotFound   = errors.New("catalog service not found")
	ErrPartNotFound      = errors.New("part not found")
	ErrOrderNotEditable  = errors.New("order no longer accepts items")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

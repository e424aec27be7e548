package scheduling

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("appointment not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrServiceNotFound   = errors.New("catalog service not found")
	ErrOwnershipMismatch = errors.New("vehicle does not belong to the given client")
	ErrSlotTaken         = errors.New("scheduling conflict for this vehicle")
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)

func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// CanTransitionTo: pending -> confirmed -> completed, and any non-terminal
// status may be cancelled. Cancelled rows stay on record but no longer
// occupy their slot.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch {
	case s == AppointmentPending && next == AppointmentConfirmed:
		return true
	case s == AppointmentConfirmed && next == AppointmentCompleted:
		return true
	case !s.Terminal() && next == AppointmentCancelled:
		return true
	}
	return false
}

// Appointment reserves a vehicle for a catalog service at an exact
// timestamp. Scheduling has no duration; conflicts are exact-timestamp only.
type Appointment struct {
	ID          int64             `json:"id"`
	ClientID    int64             `json:"client_id" validate:"required"`
	VehicleID   int64             `json:"vehicle_id" validate:"required"`
	ServiceID   int64             `json:"service_id" validate:"required"`
	ScheduledAt time.Time         `json:"scheduled_at" validate:"required"`
	Status      AppointmentStatus `json:"status"`
}

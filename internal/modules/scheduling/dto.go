package scheduling

import "time"

type CreateAppointmentRequest struct {
	ClientID    int64     `json:"client_id" binding:"required"`
	VehicleID   int64     `json:"vehicle_id" binding:"required"`
	ServiceID   int64     `json:"service_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

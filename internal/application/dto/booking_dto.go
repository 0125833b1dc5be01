package dto

import "time"

// CreateBookingRequest entrada para crear una reserva (solo customer).
type CreateBookingRequest struct {
	ServiceCategoryID string `json:"service_category_id" validate:"required"`
	Address           string `json:"address" validate:"required"`
	ScheduledDate     string `json:"scheduled_date" validate:"required"`
	ScheduledTime     string `json:"scheduled_time" validate:"required"`
}

// UpdateBookingStatusRequest entrada para cambiar el estado de una reserva.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted in_progress completed cancelled"`
}

// BookingResponse salida de una reserva.
type BookingResponse struct {
	BookingID         string    `json:"booking_id"`
	CustomerID        string    `json:"customer_id"`
	CustomerName      string    `json:"customer_name"`
	CustomerPhone     string    `json:"customer_phone,omitempty"`
	ProfessionalID    string    `json:"professional_id,omitempty"`
	ProfessionalName  string    `json:"professional_name,omitempty"`
	ServiceCategoryID string    `json:"service_category_id"`
	ServiceName       string    `json:"service_name"`
	Address           string    `json:"address"`
	ScheduledDate     string    `json:"scheduled_date"`
	ScheduledTime     string    `json:"scheduled_time"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

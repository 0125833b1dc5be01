package entity

import "time"

// Review es la reseña de un cliente sobre una reserva completada.
// Máximo una reseña por reserva (índice unique sobre booking_id).
type Review struct {
	ID             string
	BookingID      string
	CustomerID     string
	CustomerName   string
	ProfessionalID string
	Rating         int // 1-5
	Comment        string
	CreatedAt      time.Time
}

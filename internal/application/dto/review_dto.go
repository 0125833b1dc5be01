package dto

import "time"

// CreateReviewRequest entrada para reseñar una reserva completada.
type CreateReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ReviewID       string    `json:"review_id"`
	BookingID      string    `json:"booking_id"`
	CustomerID     string    `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	ProfessionalID string    `json:"professional_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}

package entity

import "time"

// Estados válidos de una reserva. Transiciones:
// pending -> accepted -> in_progress -> completed
// pending|accepted|in_progress -> cancelled
const (
	BookingPending    = "pending"
	BookingAccepted   = "accepted"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// ValidBookingStatus reporta si status es uno de los estados conocidos.
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingAccepted, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking representa una reserva de servicio. CustomerName, CustomerPhone y
// ServiceName son snapshots tomados al crear la reserva: si el usuario o la
// categoría cambian después, la reserva conserva los valores originales.
// ProfessionalID/ProfessionalName quedan vacíos hasta que un profesional acepta.
type Booking struct {
	ID                string
	CustomerID        string
	CustomerName      string
	CustomerPhone     string
	ProfessionalID    string
	ProfessionalName  string
	ServiceCategoryID string
	ServiceName       string
	Address           string
	ScheduledDate     string // YYYY-MM-DD, texto como lo envía el frontend
	ScheduledTime     string // HH:MM
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

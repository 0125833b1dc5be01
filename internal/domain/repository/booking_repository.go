package repository

import "github.com/jhoicas/servihogar-api/internal/domain/entity"

// BookingRepository puerto de persistencia de reservas.
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	ListByCustomer(customerID string, limit int) ([]*entity.Booking, error)
	ListByProfessional(professionalID string, limit int) ([]*entity.Booking, error)
	ListAll(limit int) ([]*entity.Booking, error)
	// ListPendingByCategories devuelve reservas pendientes cuya categoría está
	// en el set del profesional (bolsa de trabajos disponibles).
	ListPendingByCategories(categoryIDs []string, limit int) ([]*entity.Booking, error)
	// Assign asigna profesional y cambia el estado; solo aplica si la reserva
	// sigue en pending (la condición va en el UPDATE para resolver la carrera
	// entre dos profesionales que aceptan a la vez).
	Assign(bookingID, professionalID, professionalName, status string) (bool, error)
	UpdateStatus(bookingID, status string) (bool, error)
	CountByProfessionalAndStatus(professionalID, status string) (int, error)
}

// Package booking implementa el ciclo de vida de reservas y sus reseñas:
// creación por el cliente, bolsa de trabajos para profesionales verificados,
// aceptación/rechazo, transición de estados y comprobante PDF.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

const listLimit = 100 // tope de reservas por listado, igual que el frontend original

// BookingUseCase casos de uso de reservas.
type BookingUseCase struct {
	bookingRepo  repository.BookingRepository
	categoryRepo repository.ServiceCategoryRepository
	profRepo     repository.ProfessionalRepository
	notifier     Notifier
	receipts     ReceiptGenerator
}

// NewBookingUseCase construye el caso de uso. notifier y receipts pueden ser
// implementaciones nulas en tests.
func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	categoryRepo repository.ServiceCategoryRepository,
	profRepo repository.ProfessionalRepository,
	notifier Notifier,
	receipts ReceiptGenerator,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo:  bookingRepo,
		categoryRepo: categoryRepo,
		profRepo:     profRepo,
		notifier:     notifier,
		receipts:     receipts,
	}
}

// Create crea una reserva pendiente para el cliente autenticado, con snapshot
// de su nombre/teléfono y del nombre de la categoría.
func (uc *BookingUseCase) Create(ctx context.Context, user *entity.User, in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.ServiceCategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	b := &entity.Booking{
		ID:                entity.NewID("booking", 12),
		CustomerID:        user.ID,
		CustomerName:      user.Name,
		CustomerPhone:     user.Phone,
		ServiceCategoryID: category.ID,
		ServiceName:       category.Name,
		Address:           in.Address,
		ScheduledDate:     in.ScheduledDate,
		ScheduledTime:     in.ScheduledTime,
		Status:            entity.BookingPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.bookingRepo.Create(b); err != nil {
		return nil, err
	}

	if user.Phone != "" {
		uc.notify(ctx, user.Phone, fmt.Sprintf(
			"Reserva confirmada: %s el %s a las %s. ID: %s",
			category.Name, in.ScheduledDate, in.ScheduledTime, b.ID))
	}
	return ToBookingResponse(b), nil
}

// ListForUser lista las reservas visibles para el usuario según su rol:
// el cliente ve las suyas, el profesional las asignadas a él, el admin todas.
func (uc *BookingUseCase) ListForUser(user *entity.User) ([]dto.BookingResponse, error) {
	var (
		bookings []*entity.Booking
		err      error
	)
	switch user.Role {
	case entity.RoleCustomer:
		bookings, err = uc.bookingRepo.ListByCustomer(user.ID, listLimit)
	case entity.RoleProfessional:
		bookings, err = uc.bookingRepo.ListByProfessional(user.ID, listLimit)
	case entity.RoleAdmin:
		bookings, err = uc.bookingRepo.ListAll(listLimit)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *ToBookingResponse(b))
	}
	return out, nil
}

// Get devuelve una reserva verificando propiedad: el cliente solo ve las
// suyas y el profesional las que tiene asignadas.
func (uc *BookingUseCase) Get(user *entity.User, bookingID string) (*dto.BookingResponse, error) {
	b, err := uc.ownedBooking(user, bookingID)
	if err != nil {
		return nil, err
	}
	return ToBookingResponse(b), nil
}

// Receipt genera el comprobante PDF de la reserva (mismas reglas de propiedad que Get).
func (uc *BookingUseCase) Receipt(ctx context.Context, user *entity.User, bookingID string) ([]byte, error) {
	b, err := uc.ownedBooking(user, bookingID)
	if err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetByID(b.ServiceCategoryID)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateBookingReceipt(ctx, b, category)
}

// AvailableForProfessional devuelve las reservas pendientes que coinciden con
// las categorías del profesional. Un profesional sin perfil o sin verificar
// recibe lista vacía (no error): la bolsa simplemente no le muestra nada.
func (uc *BookingUseCase) AvailableForProfessional(userID string) ([]dto.BookingResponse, error) {
	prof, err := uc.profRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if prof == nil || !prof.Verified || len(prof.ServiceCategories) == 0 {
		return []dto.BookingResponse{}, nil
	}
	bookings, err := uc.bookingRepo.ListPendingByCategories(prof.ServiceCategories, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *ToBookingResponse(b))
	}
	return out, nil
}

// Accept asigna la reserva al profesional autenticado. La condición
// status=pending va en el UPDATE: si dos profesionales aceptan a la vez solo
// uno gana y el otro recibe ErrConflict.
func (uc *BookingUseCase) Accept(ctx context.Context, user *entity.User, bookingID string) error {
	b, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if b.Status != entity.BookingPending {
		return domain.ErrConflict
	}
	ok, err := uc.bookingRepo.Assign(bookingID, user.ID, user.Name, entity.BookingAccepted)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrConflict
	}
	if b.CustomerPhone != "" {
		uc.notify(ctx, b.CustomerPhone, fmt.Sprintf("Tu reserva %s fue aceptada por %s.", bookingID, user.Name))
	}
	return nil
}

// Reject cancela una reserva pendiente (el profesional la descarta de la bolsa).
func (uc *BookingUseCase) Reject(ctx context.Context, user *entity.User, bookingID string) error {
	b, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil || b.Status != entity.BookingPending {
		return domain.ErrConflict
	}
	if _, err := uc.bookingRepo.UpdateStatus(bookingID, entity.BookingCancelled); err != nil {
		return err
	}
	if b.CustomerPhone != "" {
		uc.notify(ctx, b.CustomerPhone, fmt.Sprintf("Tu reserva %s fue cancelada.", bookingID))
	}
	return nil
}

// UpdateStatus cambia el estado de una reserva. El profesional solo puede
// tocar reservas asignadas a él; el cliente y el admin pasan el mismo chequeo
// de propiedad que Get.
func (uc *BookingUseCase) UpdateStatus(ctx context.Context, user *entity.User, bookingID, status string) error {
	if !entity.ValidBookingStatus(status) {
		return domain.ErrInvalidInput
	}
	b, err := uc.ownedBooking(user, bookingID)
	if err != nil {
		return err
	}
	if _, err := uc.bookingRepo.UpdateStatus(bookingID, status); err != nil {
		return err
	}
	if b.CustomerPhone != "" {
		uc.notify(ctx, b.CustomerPhone, fmt.Sprintf("Reserva %s: nuevo estado %s.", bookingID, status))
	}
	return nil
}

// ownedBooking resuelve la reserva y aplica las reglas de propiedad por rol.
func (uc *BookingUseCase) ownedBooking(user *entity.User, bookingID string) (*entity.Booking, error) {
	b, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	switch user.Role {
	case entity.RoleCustomer:
		if b.CustomerID != user.ID {
			return nil, domain.ErrForbidden
		}
	case entity.RoleProfessional:
		if b.ProfessionalID != user.ID {
			return nil, domain.ErrForbidden
		}
	}
	return b, nil
}

func (uc *BookingUseCase) notify(ctx context.Context, phone, message string) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.SendSMS(ctx, phone, message)
}

// ToBookingResponse mapea la entidad al DTO de salida.
func ToBookingResponse(b *entity.Booking) *dto.BookingResponse {
	if b == nil {
		return nil
	}
	return &dto.BookingResponse{
		BookingID:         b.ID,
		CustomerID:        b.CustomerID,
		CustomerName:      b.CustomerName,
		CustomerPhone:     b.CustomerPhone,
		ProfessionalID:    b.ProfessionalID,
		ProfessionalName:  b.ProfessionalName,
		ServiceCategoryID: b.ServiceCategoryID,
		ServiceName:       b.ServiceName,
		Address:           b.Address,
		ScheduledDate:     b.ScheduledDate,
		ScheduledTime:     b.ScheduledTime,
		Status:            b.Status,
		CreatedAt:         b.CreatedAt,
	}
}

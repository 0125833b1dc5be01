package booking_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memBookingRepo struct {
	byID map[string]*entity.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{byID: map[string]*entity.Booking{}}
}

func (r *memBookingRepo) Create(b *entity.Booking) error {
	cp := *b
	r.byID[b.ID] = &cp
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*entity.Booking, error) {
	if b, ok := r.byID[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *memBookingRepo) ListByCustomer(customerID string, limit int) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.CustomerID == customerID }), nil
}

func (r *memBookingRepo) ListByProfessional(professionalID string, limit int) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.ProfessionalID == professionalID }), nil
}

func (r *memBookingRepo) ListAll(limit int) ([]*entity.Booking, error) {
	return r.filter(func(*entity.Booking) bool { return true }), nil
}

func (r *memBookingRepo) ListPendingByCategories(categoryIDs []string, limit int) ([]*entity.Booking, error) {
	set := map[string]bool{}
	for _, id := range categoryIDs {
		set[id] = true
	}
	return r.filter(func(b *entity.Booking) bool {
		return b.Status == entity.BookingPending && set[b.ServiceCategoryID]
	}), nil
}

// Assign replica la semántica del UPDATE condicionado: solo aplica si la
// reserva sigue pendiente.
func (r *memBookingRepo) Assign(bookingID, professionalID, professionalName, status string) (bool, error) {
	b, ok := r.byID[bookingID]
	if !ok || b.Status != entity.BookingPending {
		return false, nil
	}
	b.ProfessionalID = professionalID
	b.ProfessionalName = professionalName
	b.Status = status
	return true, nil
}

func (r *memBookingRepo) UpdateStatus(bookingID, status string) (bool, error) {
	b, ok := r.byID[bookingID]
	if !ok {
		return false, nil
	}
	b.Status = status
	return true, nil
}

func (r *memBookingRepo) CountByProfessionalAndStatus(professionalID, status string) (int, error) {
	n := 0
	for _, b := range r.byID {
		if b.ProfessionalID == professionalID && b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) filter(keep func(*entity.Booking) bool) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range r.byID {
		if keep(b) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out
}

type memCategoryRepo struct {
	byID map[string]*entity.ServiceCategory
}

func newMemCategoryRepo(categories ...*entity.ServiceCategory) *memCategoryRepo {
	r := &memCategoryRepo{byID: map[string]*entity.ServiceCategory{}}
	for _, c := range categories {
		r.byID[c.ID] = c
	}
	return r
}

func (r *memCategoryRepo) Create(c *entity.ServiceCategory) error { r.byID[c.ID] = c; return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.ServiceCategory, error) {
	return r.byID[id], nil
}
func (r *memCategoryRepo) ListActive() ([]*entity.ServiceCategory, error) {
	var out []*entity.ServiceCategory
	for _, c := range r.byID {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

type memProfRepo struct {
	byUserID map[string]*entity.Professional
}

func newMemProfRepo(profs ...*entity.Professional) *memProfRepo {
	r := &memProfRepo{byUserID: map[string]*entity.Professional{}}
	for _, p := range profs {
		r.byUserID[p.UserID] = p
	}
	return r
}

func (r *memProfRepo) Create(p *entity.Professional) error { r.byUserID[p.UserID] = p; return nil }
func (r *memProfRepo) GetByUserID(userID string) (*entity.Professional, error) {
	return r.byUserID[userID], nil
}
func (r *memProfRepo) Update(p *entity.Professional) error { r.byUserID[p.UserID] = p; return nil }
func (r *memProfRepo) UpdateVerified(userID string, verified bool) (bool, error) {
	p, ok := r.byUserID[userID]
	if !ok {
		return false, nil
	}
	p.Verified = verified
	return true, nil
}
func (r *memProfRepo) UpdateRating(userID string, rating decimal.Decimal, totalReviews int) error {
	if p, ok := r.byUserID[userID]; ok {
		p.Rating = rating
		p.TotalReviews = totalReviews
	}
	return nil
}
func (r *memProfRepo) List() ([]*entity.Professional, error) { return nil, nil }

// recordingNotifier captura los SMS enviados.
type recordingNotifier struct {
	sent []string
}

func (n *recordingNotifier) SendSMS(_ context.Context, toPhone, message string) {
	n.sent = append(n.sent, toPhone+": "+message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testCategory() *entity.ServiceCategory {
	return &entity.ServiceCategory{
		ID:       "service_plomeria",
		Name:     "Plomería",
		PriceMin: decimal.NewFromInt(25),
		PriceMax: decimal.NewFromInt(80),
		Active:   true,
	}
}

func customer() *entity.User {
	return &entity.User{ID: "user_cliente1", Name: "Cliente Uno", Phone: "+573001", Role: entity.RoleCustomer}
}

func professional() *entity.User {
	return &entity.User{ID: "user_prof0001", Name: "Pro Uno", Role: entity.RoleProfessional}
}

func verifiedProfile(userID string, categories ...string) *entity.Professional {
	return &entity.Professional{UserID: userID, ServiceCategories: categories, Verified: true}
}

func buildUC(bookings *memBookingRepo, categories *memCategoryRepo, profs *memProfRepo, notifier booking.Notifier) *booking.BookingUseCase {
	return booking.NewBookingUseCase(bookings, categories, profs, notifier, nil)
}

func createBooking(t *testing.T, uc *booking.BookingUseCase) *dto.BookingResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), customer(), dto.CreateBookingRequest{
		ServiceCategoryID: "service_plomeria",
		Address:           "Calle 1 #2-3",
		ScheduledDate:     "2026-09-15",
		ScheduledTime:     "10:00",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / List / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SnapshotYEstadoInicial(t *testing.T) {
	bookings := newMemBookingRepo()
	notifier := &recordingNotifier{}
	uc := buildUC(bookings, newMemCategoryRepo(testCategory()), newMemProfRepo(), notifier)

	out := createBooking(t, uc)

	assert.Equal(t, entity.BookingPending, out.Status)
	assert.Equal(t, "Cliente Uno", out.CustomerName, "snapshot del nombre del cliente")
	assert.Equal(t, "Plomería", out.ServiceName, "snapshot del nombre de la categoría")
	assert.Empty(t, out.ProfessionalID, "sin profesional hasta que alguien acepte")
	assert.Len(t, notifier.sent, 1, "SMS de confirmación al cliente con teléfono")
}

func TestCreate_CategoriaInexistente(t *testing.T) {
	uc := buildUC(newMemBookingRepo(), newMemCategoryRepo(), newMemProfRepo(), nil)

	_, err := uc.Create(context.Background(), customer(), dto.CreateBookingRequest{
		ServiceCategoryID: "service_noexiste",
		Address:           "Calle 1",
		ScheduledDate:     "2026-09-15",
		ScheduledTime:     "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListForUser_PorRol(t *testing.T) {
	bookings := newMemBookingRepo()
	uc := buildUC(bookings, newMemCategoryRepo(testCategory()), newMemProfRepo(), nil)
	created := createBooking(t, uc)

	propias, err := uc.ListForUser(customer())
	require.NoError(t, err)
	assert.Len(t, propias, 1)

	otro := &entity.User{ID: "user_otro0001", Role: entity.RoleCustomer}
	ajenas, err := uc.ListForUser(otro)
	require.NoError(t, err)
	assert.Empty(t, ajenas, "un cliente no ve reservas de otros")

	admin := &entity.User{ID: "user_admin001", Role: entity.RoleAdmin}
	todas, err := uc.ListForUser(admin)
	require.NoError(t, err)
	require.Len(t, todas, 1)
	assert.Equal(t, created.BookingID, todas[0].BookingID)
}

func TestGet_Propiedad(t *testing.T) {
	uc := buildUC(newMemBookingRepo(), newMemCategoryRepo(testCategory()), newMemProfRepo(), nil)
	created := createBooking(t, uc)

	_, err := uc.Get(customer(), created.BookingID)
	assert.NoError(t, err)

	intruso := &entity.User{ID: "user_intruso1", Role: entity.RoleCustomer}
	_, err = uc.Get(intruso, created.BookingID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Get(customer(), "booking_noexiste")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bolsa de trabajos / Accept / Reject
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailable_SoloVerificadosConCategorias(t *testing.T) {
	bookings := newMemBookingRepo()
	profs := newMemProfRepo(
		verifiedProfile("user_prof0001", "service_plomeria"),
		&entity.Professional{UserID: "user_prof0002", ServiceCategories: []string{"service_plomeria"}, Verified: false},
	)
	uc := buildUC(bookings, newMemCategoryRepo(testCategory()), profs, nil)
	createBooking(t, uc)

	visibles, err := uc.AvailableForProfessional("user_prof0001")
	require.NoError(t, err)
	assert.Len(t, visibles, 1)

	ocultas, err := uc.AvailableForProfessional("user_prof0002")
	require.NoError(t, err)
	assert.Empty(t, ocultas, "sin verificar no hay bolsa, pero tampoco error")

	sinPerfil, err := uc.AvailableForProfessional("user_prof0003")
	require.NoError(t, err)
	assert.Empty(t, sinPerfil)
}

func TestAccept_AsignaYNotifica(t *testing.T) {
	bookings := newMemBookingRepo()
	notifier := &recordingNotifier{}
	uc := buildUC(bookings, newMemCategoryRepo(testCategory()), newMemProfRepo(), notifier)
	created := createBooking(t, uc)
	notifier.sent = nil

	require.NoError(t, uc.Accept(context.Background(), professional(), created.BookingID))

	b, _ := bookings.GetByID(created.BookingID)
	assert.Equal(t, entity.BookingAccepted, b.Status)
	assert.Equal(t, "user_prof0001", b.ProfessionalID)
	assert.Equal(t, "Pro Uno", b.ProfessionalName)
	assert.Len(t, notifier.sent, 1, "SMS al cliente al aceptar")
}

// Dos profesionales aceptando la misma reserva: solo el primero gana.
func TestAccept_CarreraSoloUnoGana(t *testing.T) {
	bookings := newMemBookingRepo()
	uc := buildUC(bookings, newMemCategoryRepo(testCategory()), newMemProfRepo(), nil)
	created := createBooking(t, uc)

	require.NoError(t, uc.Accept(context.Background(), professional(), created.BookingID))

	segundo := &entity.User{ID: "user_prof0002", Name: "Pro Dos", Role: entity.RoleProfessional}
	err := uc.Accept(context.Background(), segundo, created.BookingID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	b, _ := bookings.GetByID(created.BookingID)
	assert.Equal(t, "user_prof0001", b.ProfessionalID, "la asignación del ganador no se pisa")
}

func TestReject_CancelaPendiente(t *testing.T) {
	bookings := newMemBookingRepo()
	uc := buildUC(bookings, newMemCategoryRepo(testCategory()), newMemProfRepo(), nil)
	created := createBooking(t, uc)

	require.NoError(t, uc.Reject(context.Background(), professional(), created.BookingID))

	b, _ := bookings.GetByID(created.BookingID)
	assert.Equal(t, entity.BookingCancelled, b.Status)

	// Una reserva ya cancelada no se puede rechazar otra vez.
	err := uc.Reject(context.Background(), professional(), created.BookingID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_Valido(t *testing.T) {
	bookings := newMemBookingRepo()
	uc := buildUC(bookings, newMemCategoryRepo(testCategory()), newMemProfRepo(), nil)
	created := createBooking(t, uc)
	require.NoError(t, uc.Accept(context.Background(), professional(), created.BookingID))

	require.NoError(t, uc.UpdateStatus(context.Background(), professional(), created.BookingID, entity.BookingInProgress))
	require.NoError(t, uc.UpdateStatus(context.Background(), professional(), created.BookingID, entity.BookingCompleted))

	b, _ := bookings.GetByID(created.BookingID)
	assert.Equal(t, entity.BookingCompleted, b.Status)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc := buildUC(newMemBookingRepo(), newMemCategoryRepo(testCategory()), newMemProfRepo(), nil)
	created := createBooking(t, uc)

	err := uc.UpdateStatus(context.Background(), customer(), created.BookingID, "teletransportado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_ProfesionalSoloSusReservas(t *testing.T) {
	bookings := newMemBookingRepo()
	uc := buildUC(bookings, newMemCategoryRepo(testCategory()), newMemProfRepo(), nil)
	created := createBooking(t, uc)
	require.NoError(t, uc.Accept(context.Background(), professional(), created.BookingID))

	otro := &entity.User{ID: "user_prof0099", Role: entity.RoleProfessional}
	err := uc.UpdateStatus(context.Background(), otro, created.BookingID, entity.BookingInProgress)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Guards de compilación: los fakes satisfacen los puertos reales.
var (
	_ repository.BookingRepository         = (*memBookingRepo)(nil)
	_ repository.ServiceCategoryRepository = (*memCategoryRepo)(nil)
	_ repository.ProfessionalRepository    = (*memProfRepo)(nil)
)

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/servihogar-api/internal/application/auth"
	appbooking "github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/internal/application/usecase"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CatalogUC      *usecase.CatalogUseCase
	ProfessionalUC *usecase.ProfessionalUseCase
	AnalyticsUC    *usecase.AnalyticsUseCase
	BookingUC      *appbooking.BookingUseCase
	ReviewUC       *appbooking.ReviewUseCase
	UserRepo       repository.UserRepository
	JWTSecret      string
	SecureCookies  bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookies)
	serviceHandler := NewServiceHandler(deps.CatalogUC)
	bookingHandler := NewBookingHandler(deps.BookingUC)
	professionalHandler := NewProfessionalHandler(deps.ProfessionalUC)
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	adminHandler := NewAdminHandler(deps.UserRepo, deps.ProfessionalUC, deps.AnalyticsUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público)
	api.Get("/services", serviceHandler.List)
	api.Get("/services/:id", serviceHandler.Get)

	// Reseñas de un profesional (público)
	api.Get("/reviews/professional/:id", reviewHandler.ListByProfessional)

	// Rutas protegidas (cookie de sesión o Bearer)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/profile", authHandler.UpdateProfile)

	// Reservas
	bookings := protected.Group("/bookings")
	bookings.Post("/", RequireRole(entity.RoleCustomer), bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	// available antes de :id para que Fiber no lo capture como parámetro
	bookings.Get("/available", RequireRole(entity.RoleProfessional), bookingHandler.Available)
	bookings.Get("/:id", bookingHandler.Get)
	bookings.Get("/:id/receipt", bookingHandler.Receipt)
	bookings.Put("/:id/accept", RequireRole(entity.RoleProfessional), bookingHandler.Accept)
	bookings.Put("/:id/reject", RequireRole(entity.RoleProfessional), bookingHandler.Reject)
	bookings.Put("/:id/status", bookingHandler.UpdateStatus)

	// Perfil profesional
	professionals := protected.Group("/professionals", RequireRole(entity.RoleProfessional))
	professionals.Get("/profile", professionalHandler.GetProfile)
	professionals.Put("/profile", professionalHandler.UpsertProfile)
	professionals.Get("/earnings", professionalHandler.Earnings)

	// Reseñas (solo customer crea)
	protected.Post("/reviews", RequireRole(entity.RoleCustomer), reviewHandler.Create)

	// Administración
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Post("/services", serviceHandler.Create)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/professionals", adminHandler.ListProfessionals)
	admin.Put("/professionals/:user_id/verify", adminHandler.VerifyProfessional)
	admin.Get("/analytics", adminHandler.Analytics)
}

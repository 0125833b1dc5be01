package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/servihogar-api/internal/application/auth"
	appbooking "github.com/jhoicas/servihogar-api/internal/application/booking"
	"github.com/jhoicas/servihogar-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/servihogar-api/internal/infrastructure/pdf"
	"github.com/jhoicas/servihogar-api/internal/infrastructure/postgres"
	infrasms "github.com/jhoicas/servihogar-api/internal/infrastructure/sms"
	httpRouter "github.com/jhoicas/servihogar-api/internal/interfaces/http"
	"github.com/jhoicas/servihogar-api/pkg/config"
	"github.com/jhoicas/servihogar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	// Sin secreto no hay sesiones verificables: fallar ruidosamente en el
	// arranque, nunca con un default embebido.
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewServiceCategoryRepository(pool)
	profRepo := postgres.NewProfessionalRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	reviewTx := postgres.NewReviewTxRunner(pool)

	notifier := infrasms.NewTwilioNotifier(cfg.SMS, log)
	receiptGen := infrapdf.NewMarotoReceiptGenerator()

	authUC := auth.NewAuthUseCase(userRepo, profRepo, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpirationDays,
		Issuer:  cfg.JWT.Issuer,
	})
	catalogUC := usecase.NewCatalogUseCase(categoryRepo)
	professionalUC := usecase.NewProfessionalUseCase(profRepo, userRepo, bookingRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	bookingUC := appbooking.NewBookingUseCase(bookingRepo, categoryRepo, profRepo, notifier, receiptGen)
	reviewUC := appbooking.NewReviewUseCase(bookingRepo, reviewRepo, reviewTx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ServiHogar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CatalogUC:      catalogUC,
		ProfessionalUC: professionalUC,
		AnalyticsUC:    analyticsUC,
		BookingUC:      bookingUC,
		ReviewUC:       reviewUC,
		UserRepo:       userRepo,
		JWTSecret:      cfg.JWT.Secret,
		SecureCookies:  cfg.HTTP.SecureCookies,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

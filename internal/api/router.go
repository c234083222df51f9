package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sessionhub/booking-system/internal/api/handler"
	"github.com/sessionhub/booking-system/internal/api/middleware"
	"github.com/sessionhub/booking-system/internal/core/domain"
	"github.com/sessionhub/booking-system/internal/core/service"
	mongodb "github.com/sessionhub/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sessionhub/booking-system/internal/infrastructure/db/redis"
	healthhandlers "github.com/sessionhub/booking-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every dependency is constructed here and passed down explicitly.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	guard := redisdb.NewBookingGuard(rdb)

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	profileService := service.NewProfileService(userRepo, log)
	bookingService := service.NewBookingService(bookingRepo, userRepo, guard, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authRequired := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Profile routes ---
	e.GET("/me", profileHandler.GetMe, authRequired)
	e.PUT("/me", profileHandler.UpdateMe, authRequired)

	// --- Booking routes ---
	e.POST("/bookings", bookingHandler.Create, authRequired, middleware.RBAC(domain.RoleGuest))
	e.GET("/bookings/me", bookingHandler.ListMine, authRequired)
	e.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus, authRequired, middleware.RBAC(domain.RoleHost))

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

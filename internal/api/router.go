package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawcare/vetmarket/internal/api/handler"
	"github.com/pawcare/vetmarket/internal/api/middleware"
	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
	"github.com/pawcare/vetmarket/internal/core/service"
	"github.com/pawcare/vetmarket/internal/infrastructure/config"
	mongodb "github.com/pawcare/vetmarket/internal/infrastructure/db/mongo"
	redisdb "github.com/pawcare/vetmarket/internal/infrastructure/db/redis"
	"github.com/pawcare/vetmarket/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The OTP dispatcher is constructed and started by the caller so its worker
// lifecycle is tied to the process, not the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher ports.OTPDispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vetmarket"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	vetRepo := mongodb.NewVetRepository(db)
	petRepo := mongodb.NewPetRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	ratingRepo := mongodb.NewRatingRepository(db)
	otpStore := redisdb.NewOTPStore(rdb, cfg.OTP.TTL)

	// --- Services ---
	authService := service.NewAuthService(userRepo, vetRepo, otpStore, dispatcher, cfg.JWTSecret, cfg.TokenTTL, log)
	vetService := service.NewVetService(vetRepo, userRepo, log)
	petService := service.NewPetService(petRepo, log)
	catalogService := service.NewCatalogService(serviceRepo, vetRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, vetRepo, userRepo, serviceRepo, log)
	articleService := service.NewArticleService(articleRepo, commentRepo, userRepo, log)
	ratingService := service.NewRatingService(ratingRepo, vetRepo, userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	vetHandler := handler.NewVetHandler(vetService)
	petHandler := handler.NewPetHandler(petService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	articleHandler := handler.NewArticleHandler(articleService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	vetOnly := middleware.RBAC(domain.RoleVet)
	userOnly := middleware.RBAC(domain.RoleUser)

	// --- Public routes ---
	e.POST("/api/users", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/send-otp", authHandler.SendOTP)
	e.POST("/api/verify-otp", authHandler.VerifyOTP)
	e.POST("/api/set-password", authHandler.SetPassword)

	e.GET("/api/vets/emergency", vetHandler.Emergency)
	e.GET("/api/vets/:id", vetHandler.Get)
	e.POST("/api/myservices", serviceHandler.Mine)
	e.POST("/api/services/search", serviceHandler.Search)
	e.POST("/api/articles/get", articleHandler.ListByVet)
	e.POST("/api/articles/getArticleById", articleHandler.GetByID)
	e.POST("/api/comments/get", articleHandler.Comments)
	e.POST("/api/ratings", ratingHandler.ListByVet)

	// --- Authenticated routes ---
	auth := e.Group("/api", authMiddleware)
	auth.GET("/users/:id", authHandler.Profile)

	auth.POST("/pets", petHandler.Register)
	auth.GET("/pets/:id", petHandler.Get)
	auth.POST("/mypets", petHandler.Mine)
	auth.PUT("/pets", petHandler.Update)
	auth.DELETE("/pets/:id", petHandler.Delete)

	auth.POST("/appointments", appointmentHandler.Book)
	auth.GET("/appointments/:user_id", appointmentHandler.History)

	auth.POST("/comments", articleHandler.AddComment)
	auth.POST("/rate", ratingHandler.Rate, userOnly)

	// --- Vet-only routes ---
	vet := e.Group("/api", authMiddleware, vetOnly)
	vet.POST("/vets", vetHandler.Create)
	vet.POST("/services", serviceHandler.Add)
	vet.DELETE("/services/:id", serviceHandler.Delete)
	vet.POST("/articles", articleHandler.Publish)
	vet.DELETE("/articles", articleHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

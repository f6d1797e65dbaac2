package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/djanguicore/portfolio-backend/internal/api/handler"
	"github.com/djanguicore/portfolio-backend/internal/api/middleware"
	"github.com/djanguicore/portfolio-backend/internal/auth"
	"github.com/djanguicore/portfolio-backend/internal/core/service"
	mongodb "github.com/djanguicore/portfolio-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/djanguicore/portfolio-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *auth.TokenCodec, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	skillRepo := mongodb.NewSkillRepository(db)
	educationRepo := mongodb.NewEducationRepository(db)
	cache := redisdb.NewPortfolioCache(rdb)

	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, codec, log)
	skillService := service.NewSkillService(skillRepo, cache, log)
	educationService := service.NewEducationService(educationRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	skillHandler := handler.NewSkillHandler(skillService)
	educationHandler := handler.NewEducationHandler(educationService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Global middleware ---
	// CORS answers preflights before authentication; the authenticator is
	// fail-open and the policy gate is what rejects protected paths.
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodGet, http.MethodPut, http.MethodOptions, http.MethodDelete},
		AllowHeaders: []string{"*"},
		MaxAge:       3600,
	}))
	e.Use(echoprometheus.NewMiddleware("portfolio"))
	e.Use(middleware.Authenticate(codec, userService))
	e.Use(middleware.DefaultPolicy().Middleware())

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)

	// --- Public portfolio routes ---
	v0 := e.Group("/api/v0")
	v0.POST("/post-skill", skillHandler.Create)
	v0.GET("/getSkills", skillHandler.List)
	v0.GET("/get-skill/:id", skillHandler.Get)
	v0.POST("/post-education", educationHandler.Create)
	v0.GET("/getEducation", educationHandler.List)

	// --- Admin routes (policy enforces the ADMIN role) ---
	admin := e.Group("/api/admin")
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.GET("/users/role/:role", userHandler.ByRole)

	// --- Ops & docs ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "portfolio-backend"})
	})
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

package routes

import (
	"meowth-deli-api/config"
	"meowth-deli-api/handlers"
	"meowth-deli-api/middleware"
	"meowth-deli-api/models"
	"meowth-deli-api/repository"
	"meowth-deli-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers onto the router.
// Everything is constructed here from the injected DB and config; no package
// holds global state.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminRepo := repository.NewAdminRepository(db)
	authRepo := repository.NewAuthRepository(db)
	emailRepo := repository.NewEmailRepository(db)

	sender := &services.SMTPSender{
		Host:     cfg.EmailHost,
		Port:     cfg.EmailPort,
		User:     cfg.EmailUser,
		Password: cfg.EmailPassword,
		From:     "\"Meowth Deli\" <" + cfg.EmailUser + ">",
	}

	adminService := services.NewAdminService(adminRepo)
	authService := services.NewAuthService(authRepo, cfg.JWTSecret, cfg.BcryptCost)
	emailService := services.NewEmailService(emailRepo, authRepo, sender, cfg.PublicBaseURL)

	adminHandler := handlers.NewAdminHandler(adminService)
	authHandler := handlers.NewAuthHandler(authService, emailService)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/signup", authHandler.Signup)
		public.POST("/auth/signin", authHandler.Signin)
		public.POST("/auth/signup/customer", authHandler.SignupCustomer)
		public.POST("/auth/signup/driver", authHandler.SignupDriver)
		public.POST("/auth/signup/restaurant", authHandler.SignupRestaurant)
		public.GET("/auth/verify-email", authHandler.VerifyEmail)

		// Verification machine info (great for docs/Postman)
		public.GET("/verification-machine", handlers.GetVerificationMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		auth.GET("/profile", authHandler.GetProfile)
	}

	// ── Admin verification routes ──────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/restaurants", adminHandler.ListRestaurants)
		admin.PATCH("/restaurants/:id/verify", adminHandler.VerifyRestaurant)
		admin.GET("/drivers", adminHandler.ListDrivers)
		admin.PATCH("/drivers/:id/verify", adminHandler.VerifyDriver)
	}
}

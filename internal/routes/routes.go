package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/agenda-api/internal/audit"
	"github.com/navalha-app/agenda-api/internal/config"
	"github.com/navalha-app/agenda-api/internal/handlers"
	"github.com/navalha-app/agenda-api/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)
	barberHandler := handlers.NewBarberHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	blocksHandler := handlers.NewBlocksHandler(db)
	planHandler := handlers.NewPlanHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(db, auditDispatcher)
	publicHandler := handlers.NewPublicHandler(db, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (WIDGET)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
			publicAPI.POST("/:slug/bookings/:publicId/cancel", publicHandler.CancelBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (PAINEL)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create)
			secured.PATCH("/me/barbers/:id", barberHandler.Update)

			secured.GET("/me/customers", customerHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/blocks", blocksHandler.List)
			secured.POST("/me/blocks", blocksHandler.Create)
			secured.DELETE("/me/blocks/:id", blocksHandler.Delete)

			secured.GET("/me/plans", planHandler.List)
			secured.POST("/me/plans", planHandler.Create)
			secured.POST("/me/plans/:id/subscribe", planHandler.Subscribe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

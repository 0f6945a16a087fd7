package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jmkbeauty/salon-booking/internal/audit"
	"github.com/jmkbeauty/salon-booking/internal/config"
	"github.com/jmkbeauty/salon-booking/internal/handlers"
	infraRepo "github.com/jmkbeauty/salon-booking/internal/infra/repository"
	"github.com/jmkbeauty/salon-booking/internal/middleware"
	ucAppointment "github.com/jmkbeauty/salon-booking/internal/usecase/appointment"
	ucBooking "github.com/jmkbeauty/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	slotCache ucBooking.SlotCache,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailableSlots(repo, slotCache)
	createBookingUC := ucBooking.NewCreateBooking(repo, auditDispatcher, slotCache)
	updateBookingUC := ucBooking.NewUpdateBooking(repo, auditDispatcher, slotCache)
	cancelBookingUC := ucBooking.NewCancelBooking(repo, auditDispatcher, slotCache)
	changeStatusUC := ucBooking.NewChangeBookingStatus(repo, auditDispatcher, slotCache)
	predictionsUC := ucBooking.NewGetPredictions(repo)
	matchStylistsUC := ucBooking.NewMatchStylists(repo)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, auditDispatcher)
	appointmentStatusUC := ucAppointment.NewUpdateAppointmentStatus(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		db,
		availabilityUC,
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		changeStatusUC,
		predictionsUC,
		matchStylistsUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		appointmentStatusUC,
	)

	serviceHandler := handlers.NewServiceHandler(db)
	stylistHandler := handlers.NewStylistHandler(db)
	testimonialHandler := handlers.NewTestimonialHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	adminHandler := handlers.NewAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/stylists", stylistHandler.List)
		api.GET("/testimonials", testimonialHandler.ListApproved)
		api.POST("/testimonials", testimonialHandler.Create)
		api.GET("/settings", settingsHandler.Get)

		// Availability and the heuristics around it.
		api.GET("/bookings/availability/:date/:serviceId", bookingHandler.GetAvailability)
		api.GET("/bookings/predictions/:serviceId", bookingHandler.GetPredictions)
		api.GET("/bookings/stylists/:serviceId", bookingHandler.GetStylists)

		api.POST("/bookings", bookingHandler.Create)
		api.PUT("/bookings/:id", bookingHandler.Update)
		api.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		api.GET("/bookings/customer/:email", bookingHandler.ListByCustomer)

		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API (ADMIN)
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/analytics/overview", adminHandler.Overview)

			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.GetByID)
			secured.PATCH("/bookings/:id/status", bookingHandler.ChangeStatus)

			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)

			secured.POST("/stylists", stylistHandler.Create)
			secured.PUT("/stylists/:id/working-hours", stylistHandler.UpdateWorkingHours)

			secured.GET("/testimonials", testimonialHandler.ListAll)
			secured.PATCH("/testimonials/:id/approve", testimonialHandler.Approve)

			secured.PATCH("/settings", settingsHandler.Update)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	"github.com/blackline-studio/tattoo-scheduler/internal/config"
	"github.com/blackline-studio/tattoo-scheduler/internal/handlers"
	infraRepo "github.com/blackline-studio/tattoo-scheduler/internal/infra/repository"
	"github.com/blackline-studio/tattoo-scheduler/internal/middleware"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
	"github.com/blackline-studio/tattoo-scheduler/internal/storage"
	usecase "github.com/blackline-studio/tattoo-scheduler/internal/usecase/schedule"
)

// Deps carries the optional infrastructure built in main: nil cache,
// store or notifier just degrades the corresponding feature.
type Deps struct {
	Log      *zap.Logger
	Loc      *time.Location
	Cache    usecase.DisabledDatesCache
	Store    *storage.ImageStore
	Notifier usecase.Notifier
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	notifier := deps.Notifier
	if notifier == nil {
		notifier = usecase.NopNotifier{}
	}

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	availableSlotsUC := usecase.NewGetAvailableSlots(scheduleRepo, cfg.SlotStepMinutes)
	slotCountsUC := usecase.NewGetDailySlotCounts(scheduleRepo, cfg.SlotStepMinutes)
	disabledDatesUC := usecase.NewGetDisabledDates(scheduleRepo, deps.Cache, nil)

	createBookingUC := usecase.NewCreateBooking(
		scheduleRepo,
		auditDispatcher,
		notifier,
		deps.Loc,
		cfg.MinAdvanceMinutes,
	)

	confirmUC := usecase.NewConfirmAppointment(scheduleRepo, auditDispatcher, notifier, deps.Loc)
	cancelUC := usecase.NewCancelAppointment(scheduleRepo, auditDispatcher, notifier, deps.Loc)
	rescheduleUC := usecase.NewRescheduleAppointment(scheduleRepo, auditDispatcher, deps.Loc)
	listUC := usecase.NewListAppointments(scheduleRepo, deps.Loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	availabilityHandler := handlers.NewAvailabilityHandler(db, auditDispatcher, deps.Cache)
	overrideHandler := handlers.NewOverrideHandler(db, auditDispatcher, deps.Cache)

	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		confirmUC,
		cancelUC,
		rescheduleUC,
		listUC,
	)

	portfolioHandler := handlers.NewPortfolioHandler(db, deps.Store, auditDispatcher)
	adminUsersHandler := handlers.NewAdminUsersHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		availableSlotsUC,
		slotCountsUC,
		disabledDatesUC,
		createBookingUC,
		deps.Loc,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/artists", publicHandler.ListArtists)
			publicAPI.GET("/artists/:artistId/services", publicHandler.ListServices)
			publicAPI.GET("/artists/:artistId/availability", publicHandler.Availability)
			publicAPI.GET("/artists/:artistId/daily-slot-counts", publicHandler.DailySlotCounts)
			publicAPI.GET("/artists/:artistId/disabled-dates", publicHandler.DisabledDates)
			publicAPI.POST("/artists/:artistId/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/portfolio", publicHandler.Gallery)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			// ------------------------------
			// ARTIST BACK OFFICE
			// ------------------------------
			artist := secured.Group("/me")
			artist.Use(middleware.RequireRole(db, models.RoleAdmin, models.RoleArtist))
			{
				artist.GET("/services", serviceHandler.List)
				artist.POST("/services", serviceHandler.Create)
				artist.PATCH("/services/:id", serviceHandler.Update)
				artist.DELETE("/services/:id", serviceHandler.Delete)

				artist.GET("/availability", availabilityHandler.List)
				artist.PUT("/availability", availabilityHandler.Replace)

				artist.GET("/date-overrides", overrideHandler.List)
				artist.POST("/date-overrides", overrideHandler.Create)
				artist.DELETE("/date-overrides/:id", overrideHandler.Delete)

				artist.POST("/appointments", appointmentHandler.Create)
				artist.GET("/appointments", appointmentHandler.ListByDate)
				artist.GET("/appointments/month", appointmentHandler.ListByMonth)
				artist.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				artist.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				artist.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

				artist.GET("/portfolio", portfolioHandler.List)
				artist.POST("/portfolio", portfolioHandler.Upload)
				artist.PATCH("/portfolio/:id", portfolioHandler.Update)
				artist.PUT("/portfolio/order", portfolioHandler.Reorder)
				artist.DELETE("/portfolio/:id", portfolioHandler.Delete)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(db, models.RoleAdmin))
			{
				admin.GET("/users", adminUsersHandler.List)
				admin.POST("/users", adminUsersHandler.Create)
				admin.PATCH("/users/:id", adminUsersHandler.Update)
				admin.POST("/users/:id/reset-password", adminUsersHandler.ResetPassword)

				admin.PATCH("/portfolio/:id/approve", portfolioHandler.Approve)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/propease/propease-api/docs" // Swagger docs
	"github.com/propease/propease-api/internal/config"
	"github.com/propease/propease-api/internal/database"
	"github.com/propease/propease-api/internal/handlers"
	"github.com/propease/propease-api/internal/jobs"
	"github.com/propease/propease-api/internal/middleware"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/internal/services"
	"github.com/propease/propease-api/internal/storage"
	"github.com/propease/propease-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title PropEase API
// @version 1.0
// @description REST API for the PropEase real-estate CRM: project registration, wing and unit inventory, bookings and enquiries

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	// Sentry is optional
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.ResendAPIKey == "" {
		logger.Warn("Resend email disabled: RESEND_API_KEY not set")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.Environment)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	repos := repository.NewRepositories(db)

	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	svcs := services.NewServices(repos, worker, store, cfg, db)
	scheduleJobs(worker, svcs)

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", "error", err)
		os.Exit(1)
	}
	h := handlers.NewHandlers(svcs, store)
	router := setupRouter(h, svcs, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, svcs *services.Services, cfg *config.Config) *gin.Engine {
	router := gin.New()

	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.GET("/health", h.Health.Index)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(svcs.Auth))
	{
		protected.GET("/auth/me", h.Auth.Me)
		protected.PATCH("/users/:user_id/change_password", middleware.RequireAdminOrSelf(), h.User.ChangePassword)

		// Static route first so "mark_all_as_read" is not matched as :notification_id
		notifications := protected.Group("/notifications")
		{
			notifications.GET("", h.Notification.Index)
			notifications.POST("/mark_all_as_read", h.Notification.MarkAllAsRead)
			notifications.GET("/:notification_id", h.Notification.Show)
			notifications.PUT("/:notification_id", h.Notification.Update)
			notifications.DELETE("/:notification_id", h.Notification.Delete)
		}

		protected.GET("/projects", h.Project.Index)
		protected.GET("/enquiries", h.Enquiry.Index)
		protected.GET("/follow_ups/tasks", h.FollowUp.Tasks)
		protected.POST("/floors/preview", h.Wing.PreviewFloors)

		clients := protected.Group("/clients")
		{
			clients.GET("", h.Client.Index)
			clients.POST("", h.Client.Create)
			clients.GET("/:client_id", h.Client.Show)
			clients.PUT("/:client_id", h.Client.Update)
		}

		project := protected.Group("/projects/:project_id")
		project.Use(middleware.RequireProjectAccess(svcs.User))
		{
			project.GET("", h.Project.Show)
			project.GET("/summary", h.Project.Summary)
			project.GET("/units", h.Project.Units)
			project.GET("/wings", h.Wing.Index)
			project.GET("/wings/:wing_id", h.Wing.Show)

			project.GET("/bookings", h.Booking.Index)
			project.POST("/bookings", h.Booking.Create)
			project.GET("/bookings/:booking_id", h.Booking.Show)
			project.GET("/bookings/:booking_id/receipt", h.Report.BookingReceipt)
			project.GET("/units/:unit_id/booking", h.Booking.ForUnit)
			project.POST("/units/:unit_id/register", h.Booking.Register)
			project.POST("/units/:unit_id/cancel", h.Booking.Cancel)

			project.GET("/enquiries", h.Enquiry.ProjectIndex)
			project.POST("/enquiries", h.Enquiry.Create)
			project.PUT("/enquiries/:enquiry_id/status", h.Enquiry.UpdateStatus)
			project.GET("/enquiries/:enquiry_id/follow_up", h.FollowUp.ForEnquiry)
			project.GET("/follow_ups", h.FollowUp.Index)
			project.GET("/follow_ups/:follow_up_id", h.FollowUp.Show)
			project.POST("/follow_ups/:follow_up_id/notes", h.FollowUp.AddNote)

			project.GET("/banks", h.Resource.Banks)
			project.GET("/amenities", h.Resource.Amenities)
			project.GET("/documents", h.Resource.Documents)
			project.GET("/documents/:document_id/download", h.Resource.DownloadDocument)
			project.GET("/disbursements", h.Resource.Disbursements)

			reports := project.Group("/reports")
			{
				reports.GET("/detail_pdf", h.Report.ProjectDetailPDF)
				reports.GET("/detail_html", h.Report.ProjectDetailHTML)
				reports.GET("/inventory_xlsx", h.Report.InventoryXLSX)
				reports.GET("/bookings_csv", h.Report.BookingsCSV)
			}

			projectAdmin := project.Group("")
			projectAdmin.Use(middleware.RequireAdmin())
			{
				projectAdmin.PUT("", h.Project.Update)
				projectAdmin.DELETE("", h.Project.Delete)
				projectAdmin.POST("/wings", h.Wing.Create)
				projectAdmin.PUT("/wings/:wing_id", h.Wing.Update)
				projectAdmin.DELETE("/wings/:wing_id", h.Wing.Delete)
				projectAdmin.POST("/banks", h.Resource.AddBank)
				projectAdmin.DELETE("/banks/:bank_id", h.Resource.DeleteBank)
				projectAdmin.POST("/amenities", h.Resource.AddAmenity)
				projectAdmin.DELETE("/amenities/:amenity_id", h.Resource.DeleteAmenity)
				projectAdmin.POST("/documents", h.Resource.AddDocument)
				projectAdmin.DELETE("/documents/:document_id", h.Resource.DeleteDocument)
				projectAdmin.POST("/disbursements", h.Resource.AddDisbursement)
				projectAdmin.DELETE("/disbursements/:disbursement_id", h.Resource.DeleteDisbursement)
			}
		}

		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/users", h.User.Index)
			admin.POST("/users", h.User.Create)
			admin.GET("/users/:user_id", h.User.Show)
			admin.PUT("/users/:user_id", h.User.Update)
			admin.DELETE("/users/:user_id", h.User.Delete)
			admin.PUT("/users/:user_id/toggle_status", h.User.ToggleStatus)
			admin.POST("/users/:user_id/reset_password", h.User.ResetPassword)
			admin.PUT("/users/:user_id/projects", h.User.AssignProjects)

			admin.GET("/audits", h.Audit.Index)
			admin.GET("/jobs/status", h.Job.Status)

			registrations := admin.Group("/registrations")
			{
				registrations.POST("", h.Registration.Start)
				registrations.GET("", h.Registration.Index)
				registrations.GET("/:draft_id", h.Registration.Show)
				registrations.DELETE("/:draft_id", h.Registration.Discard)
				registrations.PUT("/:draft_id/basic_info", h.Registration.SetBasicInfo)
				registrations.POST("/:draft_id/next", h.Registration.Next)
				registrations.POST("/:draft_id/prev", h.Registration.Prev)

				registrations.POST("/:draft_id/wing_session", h.Registration.OpenWing)
				registrations.DELETE("/:draft_id/wing_session", h.Registration.CloseWing)
				registrations.PUT("/:draft_id/wing_session/form", h.Registration.SetWingForm)
				registrations.PUT("/:draft_id/wing_session/pending_row", h.Registration.SetPendingRow)
				registrations.POST("/:draft_id/wing_session/rows", h.Registration.CommitRow)
				registrations.POST("/:draft_id/wing_session/rows/:index/edit", h.Registration.EditRow)
				registrations.DELETE("/:draft_id/wing_session/rows/:index", h.Registration.DeleteRow)
				registrations.POST("/:draft_id/wing_session/save", h.Registration.SaveWing)
				registrations.DELETE("/:draft_id/wings/:wing_id", h.Registration.RemoveWing)

				registrations.POST("/:draft_id/banks", h.Registration.AddBank)
				registrations.DELETE("/:draft_id/banks/:bank_id", h.Registration.RemoveBank)
				registrations.POST("/:draft_id/amenities", h.Registration.AddAmenity)
				registrations.DELETE("/:draft_id/amenities/:amenity_id", h.Registration.RemoveAmenity)
				registrations.POST("/:draft_id/documents", h.Registration.AddDocument)
				registrations.DELETE("/:draft_id/documents/:document_id", h.Registration.RemoveDocument)
				registrations.POST("/:draft_id/disbursements", h.Registration.AddDisbursement)
				registrations.DELETE("/:draft_id/disbursements/:disbursement_id", h.Registration.RemoveDisbursement)
				registrations.POST("/:draft_id/submit", h.Registration.Submit)
			}
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Abandoned registration drafts
	worker.ScheduleEvery("purge-idle-drafts", 15*time.Minute, func(ctx context.Context) error {
		if n := svcs.Registration.PurgeIdle(ctx); n > 0 {
			logger.Info("[Job] Purged idle registration drafts", "count", n)
		}
		return nil
	})

	worker.ScheduleEveryImmediate("cleanup-refresh-tokens", 6*time.Hour, func(ctx context.Context) error {
		return svcs.Auth.CleanupExpiredTokens(ctx)
	})

	worker.ScheduleEveryImmediate("follow-up-reminders", time.Hour, func(ctx context.Context) error {
		n, err := svcs.FollowUp.SendDueReminders(ctx)
		if n > 0 {
			logger.Info("[Job] Sent follow-up reminders", "count", n)
		}
		return err
	})

	logger.Info("Scheduled recurring jobs")
}

package services

import (
	"github.com/propease/propease-api/internal/config"
	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/jobs"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/internal/storage"
	"gorm.io/gorm"
)

// Services holds all service instances
type Services struct {
	Auth         *AuthService
	User         *UserService
	Project      *ProjectService
	Wing         *WingService
	Booking      *BookingService
	Registration *RegistrationService
	Client       *ClientService
	Enquiry      *EnquiryService
	FollowUp     *FollowUpService
	Resource     *ResourceService
	Notification *NotificationService
	Report       *ReportService
	Export       *ExportService
	Audit        *AuditService
	Email        *EmailService
	Image        *ImageService
	Job          *JobService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, store *storage.LocalStorage, cfg *config.Config, db *gorm.DB) *Services {
	notificationSvc := NewNotificationService(repos.Notification, repos.User, worker)
	emailSvc := NewEmailService(cfg)
	auditSvc := NewAuditService(db)
	imageSvc := NewImageService(store)
	drafts := registration.NewStore()

	defaults := inventory.FloorDefaults{Area: cfg.FloorDefaultArea, Quantity: cfg.FloorDefaultQuantity}
	projectSvc := NewProjectService(repos, auditSvc)

	return &Services{
		Auth:         NewAuthService(repos.User, repos.RefreshToken, cfg),
		User:         NewUserService(repos, worker, emailSvc, notificationSvc, auditSvc),
		Project:      projectSvc,
		Wing:         NewWingService(repos, defaults, notificationSvc, auditSvc),
		Booking:      NewBookingService(repos, notificationSvc, emailSvc, auditSvc, worker),
		Registration: NewRegistrationService(drafts, repos, imageSvc, defaults, notificationSvc, auditSvc, cfg.DraftTTL),
		Client:       NewClientService(repos.Client, auditSvc),
		Enquiry:      NewEnquiryService(repos, auditSvc),
		FollowUp:     NewFollowUpService(repos, notificationSvc, auditSvc),
		Resource:     NewResourceService(repos, imageSvc, auditSvc),
		Notification: notificationSvc,
		Report:       NewReportService(repos, projectSvc),
		Export:       NewExportService(repos, projectSvc),
		Audit:        auditSvc,
		Email:        emailSvc,
		Image:        imageSvc,
		Job:          NewJobService(worker, drafts, cfg.DraftTTL),
	}
}

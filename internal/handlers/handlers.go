package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/internal/services"
	"github.com/propease/propease-api/internal/storage"
	"github.com/propease/propease-api/pkg/logger"
	"gorm.io/gorm"
)

// Handlers holds all handler instances
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	User         *UserHandler
	Project      *ProjectHandler
	Wing         *WingHandler
	Booking      *BookingHandler
	Registration *RegistrationHandler
	Client       *ClientHandler
	Enquiry      *EnquiryHandler
	FollowUp     *FollowUpHandler
	Resource     *ResourceHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Audit        *AuditHandler
	Job          *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, store *storage.LocalStorage) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(),
		Auth:         NewAuthHandler(svcs.Auth),
		User:         NewUserHandler(svcs.User),
		Project:      NewProjectHandler(svcs.Project),
		Wing:         NewWingHandler(svcs.Wing),
		Booking:      NewBookingHandler(svcs.Booking),
		Registration: NewRegistrationHandler(svcs.Registration),
		Client:       NewClientHandler(svcs.Client),
		Enquiry:      NewEnquiryHandler(svcs.Enquiry),
		FollowUp:     NewFollowUpHandler(svcs.FollowUp),
		Resource:     NewResourceHandler(svcs.Resource, store),
		Notification: NewNotificationHandler(svcs.Notification),
		Report:       NewReportHandler(svcs.Report, svcs.Export),
		Audit:        NewAuditHandler(svcs.Audit),
		Job:          NewJobHandler(svcs.Job),
	}
}

const genericErrorMessage = "Something went wrong, please try again"

// respondError writes the status and message for err. Unexpected errors are
// attached to the context so the request logger reports them.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		var v *apperrors.ValidationError
		errors.As(err, &v)
		body := gin.H{"error": v.Message}
		if v.Field != "" {
			body["field"] = v.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "This action is not allowed in the current state"})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrFileTooLarge), errors.Is(err, storage.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericErrorMessage})
	}
}

// paramID reads a numeric path parameter. A malformed value writes a 400
// and returns false.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// listQuery reads the common paging, search and sort parameters
func listQuery(c *gin.Context) *repository.ListQuery {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if query.PerPage <= 0 || query.PerPage > 100 {
		query.PerPage = 20
	}
	query.Search = c.Query("search_term")
	query.SortBy = c.Query("sort_by")
	query.SortDir = c.Query("sort_dir")
	return query
}

func pagination(query *repository.ListQuery, total int64) gin.H {
	return gin.H{
		"page":        query.Page,
		"per_page":    query.PerPage,
		"total":       total,
		"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
	}
}

// bindJSON binds the body into obj, writing a 400 on failure
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return false
	}
	return true
}

// sendFile writes a generated download
func sendFile(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	c.Data(http.StatusOK, contentType, data)
}

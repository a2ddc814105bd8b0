package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/middleware"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/services"
	"github.com/propease/propease-api/internal/storage"
)

// ResourceHandler serves the banks, amenities, documents and payment
// milestones of a registered project
type ResourceHandler struct {
	resourceService *services.ResourceService
	storage         *storage.LocalStorage
}

func NewResourceHandler(resourceService *services.ResourceService, storage *storage.LocalStorage) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService, storage: storage}
}

// @Summary List Banks
// @Tags Resources
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/banks [get]
func (h *ResourceHandler) Banks(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	banks, err := h.resourceService.ListBanks(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banks": banks})
}

// @Summary Add Bank
// @Tags Resources
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body registration.BankDraft true "Bank account"
// @Success 201 {object} models.BankInfo
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/banks [post]
func (h *ResourceHandler) AddBank(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	var in registration.BankDraft
	if !bindJSON(c, &in) {
		return
	}
	bank, err := h.resourceService.AddBank(c.Request.Context(), projectID, in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bank": bank})
}

// @Summary Delete Bank
// @Description Removes a bank account; the last one cannot be removed
// @Tags Resources
// @Produce json
// @Param project_id path int true "Project ID"
// @Param bank_id path int true "Bank ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/banks/{bank_id} [delete]
func (h *ResourceHandler) DeleteBank(c *gin.Context) {
	h.delete(c, "bank_id", "Bank deleted", h.resourceService.DeleteBank)
}

// @Summary List Amenities
// @Tags Resources
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/amenities [get]
func (h *ResourceHandler) Amenities(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	amenities, err := h.resourceService.ListAmenities(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amenities": amenities})
}

// @Summary Add Amenity
// @Tags Resources
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body AmenityRequest true "Amenity"
// @Success 201 {object} models.Amenity
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/amenities [post]
func (h *ResourceHandler) AddAmenity(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	var req AmenityRequest
	if !bindJSON(c, &req) {
		return
	}
	amenity, err := h.resourceService.AddAmenity(c.Request.Context(), projectID, req.Name, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"amenity": amenity})
}

// @Summary Delete Amenity
// @Tags Resources
// @Produce json
// @Param project_id path int true "Project ID"
// @Param amenity_id path int true "Amenity ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/amenities/{amenity_id} [delete]
func (h *ResourceHandler) DeleteAmenity(c *gin.Context) {
	h.delete(c, "amenity_id", "Amenity deleted", h.resourceService.DeleteAmenity)
}

// @Summary List Documents
// @Tags Resources
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/documents [get]
func (h *ResourceHandler) Documents(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	docs, err := h.resourceService.ListDocuments(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// @Summary Upload Document
// @Tags Resources
// @Accept multipart/form-data
// @Produce json
// @Param project_id path int true "Project ID"
// @Param document_type formData string true "FloorPlan, BasementPlan or LetterHead"
// @Param title formData string true "Document title"
// @Param file formData file true "PDF, JPEG or PNG"
// @Success 201 {object} models.Document
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/documents [post]
func (h *ResourceHandler) AddDocument(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	var form DocumentForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document title and file are required"})
		return
	}
	defer file.Close()

	doc, err := h.resourceService.AddDocument(c.Request.Context(), projectID, form.DocumentType, form.Title, file, header, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": doc})
}

// @Summary Download Document
// @Description Streams the stored file, or its thumbnail with thumbnail=1
// @Tags Resources
// @Produce octet-stream
// @Param project_id path int true "Project ID"
// @Param document_id path int true "Document ID"
// @Param thumbnail query bool false "Serve the thumbnail"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /projects/{project_id}/documents/{document_id}/download [get]
func (h *ResourceHandler) DownloadDocument(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	id, ok := paramID(c, "document_id")
	if !ok {
		return
	}
	doc, err := h.resourceService.FindDocument(c.Request.Context(), projectID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	rel := doc.Path
	if thumb, _ := strconv.ParseBool(c.Query("thumbnail")); thumb && doc.ThumbnailPath != "" {
		rel = doc.ThumbnailPath
	}
	fullPath, err := h.storage.FullPath(rel)
	if err != nil || !h.storage.Exists(rel) {
		respondError(c, services.ErrNotFound)
		return
	}
	c.FileAttachment(fullPath, doc.DocumentTitle+filepath.Ext(rel))
}

// @Summary Delete Document
// @Tags Resources
// @Produce json
// @Param project_id path int true "Project ID"
// @Param document_id path int true "Document ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/documents/{document_id} [delete]
func (h *ResourceHandler) DeleteDocument(c *gin.Context) {
	h.delete(c, "document_id", "Document deleted", h.resourceService.DeleteDocument)
}

// @Summary List Disbursements
// @Tags Resources
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/disbursements [get]
func (h *ResourceHandler) Disbursements(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	items, err := h.resourceService.ListDisbursements(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]models.DisbursementResponse, 0, len(items))
	for i := range items {
		responses = append(responses, items[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"disbursements": responses})
}

// @Summary Add Disbursement
// @Description Adds a payment milestone while the project's total stays at or below 100%
// @Tags Resources
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body registration.DisbursementDraft true "Milestone"
// @Success 201 {object} models.DisbursementResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/disbursements [post]
func (h *ResourceHandler) AddDisbursement(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	var in registration.DisbursementDraft
	if !bindJSON(c, &in) {
		return
	}
	d, err := h.resourceService.AddDisbursement(c.Request.Context(), projectID, in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"disbursement": d.ToResponse()})
}

// @Summary Delete Disbursement
// @Tags Resources
// @Produce json
// @Param project_id path int true "Project ID"
// @Param disbursement_id path int true "Disbursement ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/disbursements/{disbursement_id} [delete]
func (h *ResourceHandler) DeleteDisbursement(c *gin.Context) {
	h.delete(c, "disbursement_id", "Disbursement deleted", h.resourceService.DeleteDisbursement)
}

type deleteFunc func(ctx context.Context, projectID, id uint, actor services.Actor) error

func (h *ResourceHandler) delete(c *gin.Context, param, message string, fn deleteFunc) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	id, ok := paramID(c, param)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), projectID, id, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// @Summary List Notifications
// @Description Paginated notifications of the current user
// @Tags Notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param status query string false "read or unread"
// @Param level query string false "success or error"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) Index(c *gin.Context) {
	userID := middleware.GetUserID(c)
	query := listQuery(c)
	query.Filters["status"] = c.Query("status")
	query.Filters["level"] = c.Query("level")

	notifications, total, err := h.notificationService.FindByUser(c.Request.Context(), userID, query)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := h.notificationService.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notifications[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"notifications": responses, "unread": unread, "pagination": pagination(query, total)})
}

// @Summary Get Notification
// @Tags Notifications
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} models.NotificationResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/{notification_id} [get]
func (h *NotificationHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "notification_id")
	if !ok {
		return
	}
	notification, err := h.notificationService.FindByID(c.Request.Context(), id)
	if err == nil && notification.UserID != middleware.GetUserID(c) {
		err = services.ErrNotFound
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": notification.ToResponse()})
}

// @Summary Mark Notification Read
// @Tags Notifications
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/{notification_id} [put]
func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "notification_id")
	if !ok {
		return
	}
	if err := h.notificationService.MarkAsRead(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// @Summary Delete Notification
// @Tags Notifications
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/{notification_id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "notification_id")
	if !ok {
		return
	}
	if err := h.notificationService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

// @Summary Mark All Notifications Read
// @Tags Notifications
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/mark_all_as_read [post]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.notificationService.MarkAllAsRead(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

type ReportHandler struct {
	reportService *services.ReportService
	exportService *services.ExportService
}

func NewReportHandler(reportService *services.ReportService, exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, exportService: exportService}
}

// @Summary Booking Receipt PDF
// @Tags Reports
// @Produce application/pdf
// @Param project_id path int true "Project ID"
// @Param booking_id path int true "Booking ID"
// @Success 200 {file} file "booking_receipt.pdf"
// @Security BearerAuth
// @Router /projects/{project_id}/bookings/{booking_id}/receipt [get]
func (h *ReportHandler) BookingReceipt(c *gin.Context) {
	id, ok := paramID(c, "booking_id")
	if !ok {
		return
	}
	data, filename, err := h.reportService.BookingReceiptPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, "application/pdf", filename, data)
}

// @Summary Project Detail PDF
// @Description Project sheet with inventory, floors, banks, amenities and payment schedule
// @Tags Reports
// @Produce application/pdf
// @Param project_id path int true "Project ID"
// @Success 200 {file} file "project.pdf"
// @Security BearerAuth
// @Router /projects/{project_id}/reports/detail_pdf [get]
func (h *ReportHandler) ProjectDetailPDF(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	data, filename, err := h.reportService.ProjectDetailPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, "application/pdf", filename, data)
}

// @Summary Project Detail HTML
// @Description The project sheet as printable HTML
// @Tags Reports
// @Produce text/html
// @Param project_id path int true "Project ID"
// @Success 200 {string} string
// @Security BearerAuth
// @Router /projects/{project_id}/reports/detail_html [get]
func (h *ReportHandler) ProjectDetailHTML(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	data, err := h.reportService.ProjectDetailHTML(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// @Summary Inventory XLSX
// @Description Wing summary and unit list of a project as a spreadsheet
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param project_id path int true "Project ID"
// @Success 200 {file} file "inventory.xlsx"
// @Security BearerAuth
// @Router /projects/{project_id}/reports/inventory_xlsx [get]
func (h *ReportHandler) InventoryXLSX(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	data, filename, err := h.exportService.InventoryXLSX(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, data)
}

// @Summary Bookings CSV
// @Tags Reports
// @Produce text/csv
// @Param project_id path int true "Project ID"
// @Param status query string false "active, registered or cancelled"
// @Success 200 {file} file "bookings.csv"
// @Security BearerAuth
// @Router /projects/{project_id}/reports/bookings_csv [get]
func (h *ReportHandler) BookingsCSV(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	query := listQuery(c)
	query.Filters["project_id"] = strconv.FormatUint(uint64(id), 10)
	query.Filters["status"] = c.Query("status")

	data, filename, err := h.reportService.BookingsCSV(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, "text/csv", filename, data)
}

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Tags Audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Param entity query string false "Filter by entity, e.g. Booking"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > 200 {
		perPage = 50
	}
	offset := (page - 1) * perPage

	logs, total, err := h.auditService.List(c.Request.Context(), c.Query("entity"), perPage, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"audits": logs, "pagination": gin.H{"total": total, "page": page, "per_page": perPage}})
}

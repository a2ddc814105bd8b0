package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/middleware"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/services"
)

// IdempotencyHeader lets clients retry a booking without creating a second one
const IdempotencyHeader = "Idempotency-Key"

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// @Summary List Bookings
// @Description Paginated bookings of a project
// @Tags Bookings
// @Produce json
// @Param project_id path int true "Project ID"
// @Param status query string false "active, registered or cancelled"
// @Param client_id query int false "Filter by client"
// @Param search_term query string false "Search by client name or unit number"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/bookings [get]
func (h *BookingHandler) Index(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	query := listQuery(c)
	query.Filters["project_id"] = strconv.FormatUint(uint64(projectID), 10)
	query.Filters["status"] = c.Query("status")
	query.Filters["client_id"] = c.Query("client_id")

	bookings, total, err := h.bookingService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"bookings": responses, "pagination": pagination(query, total)})
}

// @Summary Get Booking
// @Tags Bookings
// @Produce json
// @Param project_id path int true "Project ID"
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} models.BookingResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/bookings/{booking_id} [get]
func (h *BookingHandler) Show(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	id, ok := paramID(c, "booking_id")
	if !ok {
		return
	}
	booking, err := h.bookingService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if booking.ProjectID != projectID {
		respondError(c, services.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking.ToResponse()})
}

// @Summary Book Unit
// @Description Books a vacant unit. The client, booking, unit status and enquiry are written together or not at all.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param Idempotency-Key header string false "Replays the booking created with the same key"
// @Param request body services.BookUnitRequest true "Booking details"
// @Success 201 {object} models.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	var req services.BookUnitRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ProjectID = projectID
	req.IdempotencyKey = strings.TrimSpace(c.GetHeader(IdempotencyHeader))

	booking, err := h.bookingService.Book(c.Request.Context(), req, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking.ToResponse(), "message": "Unit booked successfully"})
}

// @Summary Active Booking Of Unit
// @Tags Bookings
// @Produce json
// @Param project_id path int true "Project ID"
// @Param unit_id path int true "Unit ID"
// @Success 200 {object} models.BookingResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/units/{unit_id}/booking [get]
func (h *BookingHandler) ForUnit(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	unitID, ok := paramID(c, "unit_id")
	if !ok {
		return
	}
	booking, err := h.bookingService.FindActiveByUnit(c.Request.Context(), projectID, unitID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking.ToResponse()})
}

// @Summary Register Unit
// @Description Registers the active booking of a booked unit
// @Tags Bookings
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param unit_id path int true "Unit ID"
// @Param request body services.RegisterRequest true "Registration details"
// @Success 200 {object} models.BookingResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/units/{unit_id}/register [post]
func (h *BookingHandler) Register(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	unitID, ok := paramID(c, "unit_id")
	if !ok {
		return
	}
	var req services.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Register(c.Request.Context(), projectID, unitID, req, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking.ToResponse(), "message": "Unit registered successfully"})
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// @Summary Cancel Booking
// @Description Cancels the active booking of a booked unit and frees the unit
// @Tags Bookings
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param unit_id path int true "Unit ID"
// @Param request body CancelBookingRequest true "Cancellation reason"
// @Success 200 {object} models.BookingResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/units/{unit_id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	unitID, ok := paramID(c, "unit_id")
	if !ok {
		return
	}
	var req CancelBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), projectID, unitID, req.Reason, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking.ToResponse(), "message": "Booking cancelled"})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/middleware"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/internal/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// @Summary List Clients
// @Tags Clients
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name, email or mobile"
// @Param city query string false "Filter by city"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) Index(c *gin.Context) {
	query := listQuery(c)
	query.Filters["city"] = c.Query("city")

	clients, total, err := h.clientService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients, "pagination": pagination(query, total)})
}

// @Summary Get Client
// @Tags Clients
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *ClientHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	client, err := h.clientService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// @Summary Create Client
// @Description Creates a client. Name, a 10 digit mobile number and a valid email are required.
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body services.ClientInput true "Client"
// @Success 201 {object} models.Client
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var in services.ClientInput
	if err := BindNestedOrFlat(c, "client", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	client, err := h.clientService.Create(c.Request.Context(), in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client, "message": "Client created successfully"})
}

// @Summary Update Client
// @Tags Clients
// @Accept json
// @Produce json
// @Param client_id path int true "Client ID"
// @Param request body services.ClientInput true "Client"
// @Success 200 {object} models.Client
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{client_id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	var in services.ClientInput
	if err := BindNestedOrFlat(c, "client", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	client, err := h.clientService.Update(c.Request.Context(), id, in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client, "message": "Client updated successfully"})
}

type EnquiryHandler struct {
	enquiryService *services.EnquiryService
}

func NewEnquiryHandler(enquiryService *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// @Summary List Enquiries
// @Description Enquiries across the projects the user may see
// @Tags Enquiries
// @Produce json
// @Param status query string false "Filter by status"
// @Param client_id query int false "Filter by client"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /enquiries [get]
func (h *EnquiryHandler) Index(c *gin.Context) {
	h.list(c, listQuery(c))
}

// @Summary List Project Enquiries
// @Tags Enquiries
// @Produce json
// @Param project_id path int true "Project ID"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/enquiries [get]
func (h *EnquiryHandler) ProjectIndex(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	query := listQuery(c)
	query.Filters["project_id"] = strconv.FormatUint(uint64(projectID), 10)
	h.list(c, query)
}

func (h *EnquiryHandler) list(c *gin.Context, query *repository.ListQuery) {
	query.Filters["status"] = c.Query("status")
	query.Filters["client_id"] = c.Query("client_id")

	enquiries, total, err := h.enquiryService.List(c.Request.Context(), query, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enquiries": enquiries, "pagination": pagination(query, total)})
}

// @Summary Create Enquiry
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body services.EnquiryInput true "Enquiry"
// @Success 201 {object} models.Enquiry
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/enquiries [post]
func (h *EnquiryHandler) Create(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	var in services.EnquiryInput
	if !bindJSON(c, &in) {
		return
	}
	in.ProjectID = projectID

	enquiry, err := h.enquiryService.Create(c.Request.Context(), in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"enquiry": enquiry, "message": "Enquiry created successfully"})
}

type EnquiryStatusRequest struct {
	Status string `json:"status" binding:"required,enquiry_status"`
	Remark string `json:"remark"`
}

// @Summary Update Enquiry Status
// @Description Moves an open enquiry between lead stages or cancels it
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param enquiry_id path int true "Enquiry ID"
// @Param request body EnquiryStatusRequest true "New status"
// @Success 200 {object} models.Enquiry
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/enquiries/{enquiry_id}/status [put]
func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	id, ok := paramID(c, "enquiry_id")
	if !ok {
		return
	}
	var req EnquiryStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	existing, err := h.enquiryService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing.ProjectID != projectID {
		respondError(c, services.ErrNotFound)
		return
	}

	enquiry, err := h.enquiryService.UpdateStatus(c.Request.Context(), id, req.Status, req.Remark, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enquiry": enquiry, "message": "Enquiry updated"})
}

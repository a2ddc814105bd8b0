package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/middleware"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// @Summary List Projects
// @Description Paginated projects; employees only see the projects assigned to them
// @Tags Projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name, code or address"
// @Param status query string false "UPCOMING, IN_PROGRESS or COMPLETED"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) Index(c *gin.Context) {
	query := listQuery(c)
	query.Filters["status"] = c.Query("status")

	projects, total, err := h.projectService.List(c.Request.Context(), query, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, projects[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"projects": responses, "pagination": pagination(query, total)})
}

// @Summary Get Project
// @Description Project with its wings, floors and resources
// @Tags Projects
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} models.ProjectResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id} [get]
func (h *ProjectHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	project, err := h.projectService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project.ToResponse()})
}

// @Summary Update Project
// @Description Update the basic details of a project. Accepts {"project": {...}} or a flat body.
// @Tags Projects
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body registration.BasicInfo true "Project details"
// @Success 200 {object} models.ProjectResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	var info registration.BasicInfo
	if err := BindNestedOrFlat(c, "project", &info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, info, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project.ToResponse(), "message": "Project updated"})
}

// @Summary Delete Project
// @Description Soft delete a project with no booked or registered units (Admin)
// @Tags Projects
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	if err := h.projectService.Delete(c.Request.Context(), id, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// @Summary Project Inventory Summary
// @Description Vacant, booked and registered unit counts per wing
// @Tags Projects
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} services.ProjectSummary
// @Security BearerAuth
// @Router /projects/{project_id}/summary [get]
func (h *ProjectHandler) Summary(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	summary, err := h.projectService.Summary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary List Units
// @Description Paginated units of a project
// @Tags Projects
// @Produce json
// @Param project_id path int true "Project ID"
// @Param wing_id query int false "Filter by wing"
// @Param floor_id query int false "Filter by floor"
// @Param status query string false "VACANT, BOOKED or REGISTERED"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/units [get]
func (h *ProjectHandler) Units(c *gin.Context) {
	id, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	query := listQuery(c)
	query.Filters["wing_id"] = c.Query("wing_id")
	query.Filters["floor_id"] = c.Query("floor_id")
	query.Filters["status"] = c.Query("status")

	units, total, err := h.projectService.Units(c.Request.Context(), id, query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.UnitResponse, 0, len(units))
	for i := range units {
		responses = append(responses, units[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"units": responses, "pagination": pagination(query, total)})
}

type WingHandler struct {
	wingService *services.WingService
}

func NewWingHandler(wingService *services.WingService) *WingHandler {
	return &WingHandler{wingService: wingService}
}

// @Summary List Wings
// @Description Wings of a project with floors sorted ground first
// @Tags Wings
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/wings [get]
func (h *WingHandler) Index(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	wings, err := h.wingService.List(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]models.WingResponse, 0, len(wings))
	for i := range wings {
		responses = append(responses, wings[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"wings": responses})
}

// @Summary Get Wing
// @Tags Wings
// @Produce json
// @Param project_id path int true "Project ID"
// @Param wing_id path int true "Wing ID"
// @Success 200 {object} models.WingResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/wings/{wing_id} [get]
func (h *WingHandler) Show(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	wingID, ok := paramID(c, "wing_id")
	if !ok {
		return
	}
	wing, err := h.wingService.FindByID(c.Request.Context(), projectID, wingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wing": wing.ToResponse()})
}

// @Summary Create Wing
// @Description Adds a wing to an existing project and lays out its vacant units
// @Tags Wings
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body services.WingInput true "Wing form and floors"
// @Success 201 {object} models.WingResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/wings [post]
func (h *WingHandler) Create(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	var in services.WingInput
	if !bindJSON(c, &in) {
		return
	}

	wing, err := h.wingService.Create(c.Request.Context(), projectID, in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"wing": wing.ToResponse(), "message": "Wing saved"})
}

// @Summary Update Wing
// @Description Replaces the floors of a wing whose units are all vacant
// @Tags Wings
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param wing_id path int true "Wing ID"
// @Param request body services.WingInput true "Wing form and floors"
// @Success 200 {object} models.WingResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/wings/{wing_id} [put]
func (h *WingHandler) Update(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	wingID, ok := paramID(c, "wing_id")
	if !ok {
		return
	}
	var in services.WingInput
	if !bindJSON(c, &in) {
		return
	}

	wing, err := h.wingService.Update(c.Request.Context(), projectID, wingID, in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wing": wing.ToResponse(), "message": "Wing updated"})
}

// @Summary Delete Wing
// @Tags Wings
// @Produce json
// @Param project_id path int true "Project ID"
// @Param wing_id path int true "Wing ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/wings/{wing_id} [delete]
func (h *WingHandler) Delete(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	wingID, ok := paramID(c, "wing_id")
	if !ok {
		return
	}
	if err := h.wingService.Delete(c.Request.Context(), projectID, wingID, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wing deleted"})
}

type PreviewFloorsRequest struct {
	NoOfFloors int                  `json:"no_of_floors"`
	Floors     []inventory.FloorRow `json:"floors"`
}

// @Summary Preview Floors
// @Description Resizes a floor list to the given number of floors without saving
// @Tags Wings
// @Accept json
// @Produce json
// @Param request body PreviewFloorsRequest true "Current rows and floor count"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /floors/preview [post]
func (h *WingHandler) PreviewFloors(c *gin.Context) {
	var req PreviewFloorsRequest
	if !bindJSON(c, &req) {
		return
	}
	rows, err := h.wingService.PreviewFloors(req.Floors, req.NoOfFloors)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"floors":           rows,
		"no_of_properties": inventory.ComputeTotalUnits(rows),
	})
}

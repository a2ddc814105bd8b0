package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/middleware"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/services"
)

type FollowUpHandler struct {
	followUpService *services.FollowUpService
}

func NewFollowUpHandler(followUpService *services.FollowUpService) *FollowUpHandler {
	return &FollowUpHandler{followUpService: followUpService}
}

func followUpResponses(followUps []models.FollowUp) []models.FollowUpResponse {
	out := make([]models.FollowUpResponse, 0, len(followUps))
	for i := range followUps {
		out = append(out, followUps[i].ToResponse())
	}
	return out
}

// @Summary Follow-up Tasks
// @Description Follow-ups planned between from_date and to_date across the user's projects. Without dates, everything due today or overdue.
// @Tags FollowUps
// @Produce json
// @Param from_date query string false "First day (YYYY-MM-DD)"
// @Param to_date query string false "Last day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /follow_ups/tasks [get]
func (h *FollowUpHandler) Tasks(c *gin.Context) {
	followUps, err := h.followUpService.Due(c.Request.Context(), c.Query("from_date"), c.Query("to_date"), middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"follow_ups": followUpResponses(followUps)})
}

// @Summary List Project Follow-ups
// @Tags FollowUps
// @Produce json
// @Param project_id path int true "Project ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Client name"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /projects/{project_id}/follow_ups [get]
func (h *FollowUpHandler) Index(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	query := listQuery(c)
	followUps, total, err := h.followUpService.ListByProject(c.Request.Context(), projectID, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"follow_ups": followUpResponses(followUps), "pagination": pagination(query, total)})
}

// @Summary Get Follow-up
// @Tags FollowUps
// @Produce json
// @Param project_id path int true "Project ID"
// @Param follow_up_id path int true "Follow-up ID"
// @Success 200 {object} models.FollowUpResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/follow_ups/{follow_up_id} [get]
func (h *FollowUpHandler) Show(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	id, ok := paramID(c, "follow_up_id")
	if !ok {
		return
	}
	followUp, err := h.followUpService.FindByID(c.Request.Context(), projectID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"follow_up": followUp.ToResponse()})
}

// @Summary Get Enquiry Follow-up
// @Tags FollowUps
// @Produce json
// @Param project_id path int true "Project ID"
// @Param enquiry_id path int true "Enquiry ID"
// @Success 200 {object} models.FollowUpResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/enquiries/{enquiry_id}/follow_up [get]
func (h *FollowUpHandler) ForEnquiry(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	enquiryID, ok := paramID(c, "enquiry_id")
	if !ok {
		return
	}
	followUp, err := h.followUpService.ForEnquiry(c.Request.Context(), projectID, enquiryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"follow_up": followUp.ToResponse()})
}

// @Summary Add Follow-up Note
// @Description Logs a conversation with the client and moves the follow-up to the next date
// @Tags FollowUps
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param follow_up_id path int true "Follow-up ID"
// @Param request body services.FollowUpNoteInput true "Note"
// @Success 201 {object} models.FollowUpResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{project_id}/follow_ups/{follow_up_id}/notes [post]
func (h *FollowUpHandler) AddNote(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	id, ok := paramID(c, "follow_up_id")
	if !ok {
		return
	}
	var in services.FollowUpNoteInput
	if !bindJSON(c, &in) {
		return
	}

	followUp, err := h.followUpService.AddNote(c.Request.Context(), projectID, id, in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"follow_up": followUp.ToResponse(), "message": "Follow-up updated"})
}

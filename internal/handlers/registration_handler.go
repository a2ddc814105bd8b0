package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/middleware"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/services"
)

// RegistrationHandler drives the project registration wizard. Every
// mutation answers with the whole draft so the client can redraw from it.
type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

func draftResponse(d registration.Draft) gin.H {
	resp := gin.H{
		"draft":              d,
		"total_units":        d.TotalUnits(),
		"disbursement_total": d.DisbursementTotal().StringFixed(2),
	}
	if d.WingSession != nil {
		resp["wing_session_units"] = d.WingSession.TotalUnits()
	}
	return resp
}

// respondDraft writes the draft or the error of a wizard call
func (h *RegistrationHandler) respondDraft(c *gin.Context, d registration.Draft, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftResponse(d))
}

// @Summary Start Registration
// @Description Opens a new project registration draft on the basic info step
// @Tags Registration
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations [post]
func (h *RegistrationHandler) Start(c *gin.Context) {
	d := h.registrationService.Start(middleware.GetActor(c))
	c.JSON(http.StatusCreated, draftResponse(d))
}

// @Summary List Own Drafts
// @Tags Registration
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations [get]
func (h *RegistrationHandler) Index(c *gin.Context) {
	drafts := h.registrationService.ListOwn(middleware.GetActor(c))
	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

// @Summary Get Draft
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id} [get]
func (h *RegistrationHandler) Show(c *gin.Context) {
	d, err := h.registrationService.Get(c.Param("draft_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Discard Draft
// @Description Drops a draft and its uploaded documents
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id} [delete]
func (h *RegistrationHandler) Discard(c *gin.Context) {
	if err := h.registrationService.Discard(c.Param("draft_id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}

// @Summary Set Basic Info
// @Tags Registration
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body registration.BasicInfo true "Project details"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/basic_info [put]
func (h *RegistrationHandler) SetBasicInfo(c *gin.Context) {
	var info registration.BasicInfo
	if !bindJSON(c, &info) {
		return
	}
	d, err := h.registrationService.SetBasicInfo(c.Param("draft_id"), info, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Next Step
// @Description Validates the current step and moves forward. A no-op on the review step.
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id}/next [post]
func (h *RegistrationHandler) Next(c *gin.Context) {
	d, err := h.registrationService.Next(c.Request.Context(), c.Param("draft_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Previous Step
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/prev [post]
func (h *RegistrationHandler) Prev(c *gin.Context) {
	d, err := h.registrationService.Prev(c.Request.Context(), c.Param("draft_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

type OpenWingRequest struct {
	WingID string `json:"wing_id"`
}

// @Summary Open Wing Editor
// @Description Opens an empty wing editor, or loads a saved wing when wing_id is set
// @Tags Registration
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body OpenWingRequest false "Wing to edit"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/wing_session [post]
func (h *RegistrationHandler) OpenWing(c *gin.Context) {
	var req OpenWingRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	d, err := h.registrationService.OpenWing(c.Param("draft_id"), req.WingID, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Set Wing Form
// @Description Updates the wing header. Changing no_of_floors resizes the floor rows.
// @Tags Registration
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body inventory.WingForm true "Wing form"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/wing_session/form [put]
func (h *RegistrationHandler) SetWingForm(c *gin.Context) {
	var form inventory.WingForm
	if !bindJSON(c, &form) {
		return
	}
	d, err := h.registrationService.SetWingForm(c.Param("draft_id"), form, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Set Pending Row
// @Tags Registration
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body inventory.FloorRow true "Row being typed"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/wing_session/pending_row [put]
func (h *RegistrationHandler) SetPendingRow(c *gin.Context) {
	var row inventory.FloorRow
	if !bindJSON(c, &row) {
		return
	}
	d, err := h.registrationService.SetPendingRow(c.Param("draft_id"), row, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

type CommitRowRequest struct {
	Row          inventory.FloorRow `json:"row"`
	EditingIndex *int               `json:"editing_index"`
}

// @Summary Commit Floor Row
// @Description Appends the row, or replaces the row being edited. Without editing_index the editor's current target is used.
// @Tags Registration
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body CommitRowRequest true "Row"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id}/wing_session/rows [post]
func (h *RegistrationHandler) CommitRow(c *gin.Context) {
	var req CommitRowRequest
	if !bindJSON(c, &req) {
		return
	}
	actor := middleware.GetActor(c)
	id := c.Param("draft_id")

	index := inventory.NoEdit
	if req.EditingIndex != nil {
		index = *req.EditingIndex
	} else {
		current, err := h.registrationService.Get(id, actor)
		if err != nil {
			respondError(c, err)
			return
		}
		if current.WingSession != nil {
			index = current.WingSession.Editor.EditingIndex
		}
	}

	d, err := h.registrationService.CommitRow(id, req.Row, index, actor)
	h.respondDraft(c, d, err)
}

// @Summary Edit Floor Row
// @Description Loads a committed row into the pending buffer
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param index path int true "Row index"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/wing_session/rows/{index}/edit [post]
func (h *RegistrationHandler) EditRow(c *gin.Context) {
	index, ok := rowIndex(c)
	if !ok {
		return
	}
	d, err := h.registrationService.EditRow(c.Param("draft_id"), index, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Delete Floor Row
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param index path int true "Row index"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/wing_session/rows/{index} [delete]
func (h *RegistrationHandler) DeleteRow(c *gin.Context) {
	index, ok := rowIndex(c)
	if !ok {
		return
	}
	d, err := h.registrationService.DeleteRow(c.Param("draft_id"), index, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Save Wing
// @Description Validates the open wing and stores it in the draft
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id}/wing_session/save [post]
func (h *RegistrationHandler) SaveWing(c *gin.Context) {
	d, err := h.registrationService.SaveWing(c.Param("draft_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Close Wing Editor
// @Description Drops the open wing editor without saving
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/wing_session [delete]
func (h *RegistrationHandler) CloseWing(c *gin.Context) {
	d, err := h.registrationService.CloseWing(c.Param("draft_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Remove Wing
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param wing_id path string true "Draft wing ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/wings/{wing_id} [delete]
func (h *RegistrationHandler) RemoveWing(c *gin.Context) {
	d, err := h.registrationService.RemoveWing(c.Param("draft_id"), c.Param("wing_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Add Bank
// @Tags Registration
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body registration.BankDraft true "Bank account"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/banks [post]
func (h *RegistrationHandler) AddBank(c *gin.Context) {
	var bank registration.BankDraft
	if !bindJSON(c, &bank) {
		return
	}
	d, err := h.registrationService.AddBank(c.Param("draft_id"), bank, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Remove Bank
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param bank_id path string true "Draft bank ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/banks/{bank_id} [delete]
func (h *RegistrationHandler) RemoveBank(c *gin.Context) {
	d, err := h.registrationService.RemoveBank(c.Param("draft_id"), c.Param("bank_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

type AmenityRequest struct {
	Name string `json:"name"`
}

// @Summary Add Amenity
// @Tags Registration
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body AmenityRequest true "Amenity"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id}/amenities [post]
func (h *RegistrationHandler) AddAmenity(c *gin.Context) {
	var req AmenityRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.registrationService.AddAmenity(c.Param("draft_id"), req.Name, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Remove Amenity
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param amenity_id path string true "Draft amenity ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/amenities/{amenity_id} [delete]
func (h *RegistrationHandler) RemoveAmenity(c *gin.Context) {
	d, err := h.registrationService.RemoveAmenity(c.Param("draft_id"), c.Param("amenity_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// DocumentForm is the multipart form of a document upload
type DocumentForm struct {
	DocumentType string `form:"document_type" json:"document_type" binding:"required,document_type"`
	Title        string `form:"title" json:"title" binding:"required"`
}

// @Summary Upload Document
// @Tags Registration
// @Accept multipart/form-data
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param document_type formData string true "FloorPlan, BasementPlan or LetterHead"
// @Param title formData string true "Document title"
// @Param file formData file true "PDF, JPEG or PNG"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id}/documents [post]
func (h *RegistrationHandler) AddDocument(c *gin.Context) {
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

	d, err := h.registrationService.AddDocument(c.Param("draft_id"), form.DocumentType, form.Title, file, header, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Remove Document
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param document_id path string true "Draft document ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/documents/{document_id} [delete]
func (h *RegistrationHandler) RemoveDocument(c *gin.Context) {
	d, err := h.registrationService.RemoveDocument(c.Param("draft_id"), c.Param("document_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Add Disbursement
// @Description Adds a payment milestone. The running total may not exceed 100%.
// @Tags Registration
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body registration.DisbursementDraft true "Milestone"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id}/disbursements [post]
func (h *RegistrationHandler) AddDisbursement(c *gin.Context) {
	var m registration.DisbursementDraft
	if !bindJSON(c, &m) {
		return
	}
	d, err := h.registrationService.AddDisbursement(c.Param("draft_id"), m, middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Remove Disbursement
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param disbursement_id path string true "Draft disbursement ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registrations/{draft_id}/disbursements/{disbursement_id} [delete]
func (h *RegistrationHandler) RemoveDisbursement(c *gin.Context) {
	d, err := h.registrationService.RemoveDisbursement(c.Param("draft_id"), c.Param("disbursement_id"), middleware.GetActor(c))
	h.respondDraft(c, d, err)
}

// @Summary Submit Registration
// @Description Persists the project, wings, floors, units and resources in one transaction
// @Tags Registration
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 201 {object} models.ProjectResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /registrations/{draft_id}/submit [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	project, err := h.registrationService.Submit(c.Request.Context(), c.Param("draft_id"), middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": project.ToResponse(), "message": "Project registered successfully"})
}

func rowIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid row index"})
		return 0, false
	}
	return index, true
}

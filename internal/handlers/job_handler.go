package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/services"
)

// JobHandler exposes background work for operators
type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobSvc *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobSvc}
}

// @Summary Background Job Status
// @Description Worker counters, periodic jobs with their last run, and open registration drafts
// @Tags Jobs
// @Produce json
// @Success 200 {object} services.JobStatus
// @Security BearerAuth
// @Router /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.jobService.GetStatus()})
}

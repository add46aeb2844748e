package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qazimatch/qazimatch/internal/auth"
	"github.com/qazimatch/qazimatch/internal/dtos"
	"github.com/qazimatch/qazimatch/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// List is GET /jobs: the public board.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.JobService.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Mine is GET /jobs/my: the employer's own postings.
func (h *JobHandler) Mine(c *gin.Context) {
	jobs, err := h.JobService.MyJobs(c.GetString(auth.CtxUserID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is GET /jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.JobService.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create is POST /jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.JobService.Create(c.GetString(auth.CtxUserID), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update is PATCH /jobs/:id: partial edit.
func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.JobService.UpdateDetails(c.GetString(auth.CtxUserID), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully", "job": job})
}

// UpdateStatus is PUT /jobs/:id/status.
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var req dtos.JobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.JobService.UpdateStatus(c.GetString(auth.CtxUserID), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job status updated successfully", "job": job})
}

// Delete is DELETE /jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.JobService.Delete(c.GetString(auth.CtxUserID), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

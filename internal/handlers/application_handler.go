package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qazimatch/qazimatch/internal/auth"
	"github.com/qazimatch/qazimatch/internal/services"
)

// MaxResumeBytes bounds resume uploads at 5MB, matching the client-side
// check.
const MaxResumeBytes = 5 << 20

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: a}
}

// Apply is POST /applications/:id/apply: multipart resume plus optional
// cover letter.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Resume file is required"})
		return
	}
	defer file.Close()

	if header.Size > MaxResumeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Resume must be smaller than 5MB"})
		return
	}

	coverLetter := c.PostForm("coverLetter")
	app, err := h.Applications.Apply(c.Param("id"), c.GetString(auth.CtxUserID), header.Filename, file, coverLetter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "application": app})
}

// ForJob is GET /applications/job/:jobId: applications on one of the
// employer's jobs.
func (h *ApplicationHandler) ForJob(c *gin.Context) {
	apps, err := h.Applications.ForJob(c.GetString(auth.CtxUserID), c.Param("jobId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(apps), "applications": apps})
}

// Mine is GET /applications/my: the applicant's own applications.
func (h *ApplicationHandler) Mine(c *gin.Context) {
	apps, err := h.Applications.Mine(c.GetString(auth.CtxUserID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(apps), "applications": apps})
}

// OpenJobs is GET /applications/employer/open: the review dashboard feed.
func (h *ApplicationHandler) OpenJobs(c *gin.Context) {
	jobs, err := h.Applications.OpenJobsWithApplications(c.GetString(auth.CtxUserID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Select is POST /applications/job/:jobId/select/:applicationId. Accepting
// one applicant fills the job and rejects the rest.
func (h *ApplicationHandler) Select(c *gin.Context) {
	app, err := h.Applications.Select(c.GetString(auth.CtxUserID), c.Param("jobId"), c.Param("applicationId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Applicant accepted", "application": app})
}

// Reject is POST /applications/job/:jobId/reject/:applicationId.
func (h *ApplicationHandler) Reject(c *gin.Context) {
	app, err := h.Applications.Reject(c.GetString(auth.CtxUserID), c.Param("jobId"), c.Param("applicationId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Applicant rejected", "application": app})
}

// Review is POST /applications/job/:jobId/review/:applicationId.
func (h *ApplicationHandler) Review(c *gin.Context) {
	app, err := h.Applications.Review(c.GetString(auth.CtxUserID), c.Param("jobId"), c.Param("applicationId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Applicant marked as reviewed", "application": app})
}

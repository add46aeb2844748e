package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qazimatch/qazimatch/internal/services"
)

// ResumeHandler backs POST /submit-resume: a standalone mail-relay
// integration, decoupled from the job/application data model.
type ResumeHandler struct {
	Email *services.EmailService
}

func NewResumeHandler(e *services.EmailService) *ResumeHandler {
	return &ResumeHandler{Email: e}
}

func (h *ResumeHandler) Submit(c *gin.Context) {
	fullName := c.PostForm("fullName")
	userEmail := c.PostForm("userEmail")
	notes := c.PostForm("notes")

	file, header, err := c.Request.FormFile("cv")
	if fullName == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Full name and CV are required"})
		return
	}
	defer file.Close()

	if userEmail == "" || !strings.Contains(userEmail, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Valid email is required for confirmation"})
		return
	}
	if header.Size > MaxResumeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "CV must be smaller than 5MB"})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read CV"})
		return
	}

	if err := h.Email.NotifyResumeSubmission(fullName, userEmail, notes, header.Filename, content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit resume. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qazimatch/qazimatch/internal/auth"
	"github.com/qazimatch/qazimatch/internal/dtos"
	"github.com/qazimatch/qazimatch/internal/services"
)

type HeadhuntHandler struct {
	Headhunts *services.HeadhuntService
}

func NewHeadhuntHandler(h *services.HeadhuntService) *HeadhuntHandler {
	return &HeadhuntHandler{Headhunts: h}
}

// Create is POST /headhunt.
func (h *HeadhuntHandler) Create(c *gin.Context) {
	var req dtos.HeadhuntCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	request, err := h.Headhunts.Create(c.GetString(auth.CtxUserID), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Headhunt request created", "request": request})
}

// Mine is GET /headhunt/my.
func (h *HeadhuntHandler) Mine(c *gin.Context) {
	requests, err := h.Headhunts.Mine(c.Request.Context(), c.GetString(auth.CtxUserID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

// Assign is PUT /headhunt/:id/assign.
func (h *HeadhuntHandler) Assign(c *gin.Context) {
	var req dtos.HeadhuntAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	request, err := h.Headhunts.Assign(c.GetString(auth.CtxUserID), c.Param("id"), req.AssignedTo)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recruiter assigned", "request": request})
}

// Fulfill is PUT /headhunt/:id/fulfill.
func (h *HeadhuntHandler) Fulfill(c *gin.Context) {
	var req dtos.HeadhuntFulfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	request, err := h.Headhunts.Fulfill(c.GetString(auth.CtxUserID), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Headhunt request fulfilled", "request": request})
}

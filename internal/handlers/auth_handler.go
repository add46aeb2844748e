package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qazimatch/qazimatch/internal/auth"
	"github.com/qazimatch/qazimatch/internal/dtos"
	"github.com/qazimatch/qazimatch/internal/services"
)

type AuthHandler struct {
	AuthService *services.AuthService
}

func NewAuthHandler(a *services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: a}
}

// Signup is POST /auth/signup; responds with { token, user }.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, token, err := h.AuthService.Signup(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login is POST /auth/login; responds with { token, user }.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, token, err := h.AuthService.Login(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout is POST /auth/logout. Tokens are stateless, so there is nothing to
// revoke server-side; the client clears its stored session.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Profile is GET /auth/profile; responds with { user }.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.AuthService.Profile(c.GetString(auth.CtxUserID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Delete is DELETE /auth/delete.
func (h *AuthHandler) Delete(c *gin.Context) {
	if err := h.AuthService.Delete(c.GetString(auth.CtxUserID)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/middlewares"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/service"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/validation"
)

type AuthHandler struct {
	svc *service.AuthSvc
}

func NewAuthHandler(svc *service.AuthSvc) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in validation.RegisterPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validation.ValidateRegister(in); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "user registered", "user": u})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, access, refresh, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Login success",
		"accessToken":  access,
		"refreshToken": refresh,
		"user": gin.H{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		},
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var in struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.RefreshToken == "" {
		respondError(c, http.StatusBadRequest, "Refresh token is required")
		return
	}
	access, err := h.svc.Refresh(c.Request.Context(), in.RefreshToken)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Access token refreshed", "accessToken": access})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	u := middlewares.CurrentUser(c)
	if err := h.svc.Logout(c.Request.Context(), u.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	u := middlewares.CurrentUser(c)
	profile, err := h.svc.Profile(c.Request.Context(), u.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/service"
)

type AdminHandler struct {
	svc *service.AdminSvc
}

func NewAdminHandler(svc *service.AdminSvc) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "users": users})
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	var in struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Role == "" {
		respondError(c, http.StatusBadRequest, "Role is required")
		return
	}
	if !domain.ValidRole(in.Role) {
		respondError(c, http.StatusBadRequest, `Invalid role. Must be "user" or "admin"`)
		return
	}
	u, err := h.svc.UpdateRole(c.Request.Context(), c.Param("id"), in.Role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User role updated successfully", "user": u})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.svc.DeleteUser(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

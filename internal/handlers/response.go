package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
)

// fail is the single place service errors become HTTP responses. Anything
// without a mapping collapses to an opaque 500; the cause stays in the log.
func fail(c *gin.Context, err error) {
	var perm *domain.PermissionError
	if errors.As(err, &perm) {
		respondError(c, http.StatusForbidden, perm.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(c, http.StatusBadRequest, "Invalid email or password")
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		respondError(c, http.StatusUnauthorized, "Invalid refresh token or expired")
	case errors.Is(err, domain.ErrSelfDelete):
		respondError(c, http.StatusBadRequest, "Cannot delete your own account")
	case errors.Is(err, domain.ErrAssigneeStatusOnly):
		respondError(c, http.StatusBadRequest, "Assignees can only update task status")
	case errors.Is(err, domain.ErrNoUpdateFields):
		respondError(c, http.StatusBadRequest, "No valid fields to update")
	case errors.Is(err, domain.ErrInvalidAssignee):
		respondError(c, http.StatusBadRequest, "Assigned user does not exist")
	default:
		log.Printf("internal error: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

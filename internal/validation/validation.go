// Package validation holds the pure payload checks. Every function returns
// the first violation as a message, or "" when the payload is acceptable;
// the check order is fixed so error messages stay deterministic.
package validation

import (
	"strings"
	"time"
	"unicode"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
)

type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskPayload is the create/update request body. Pointer fields distinguish
// "absent" from "empty" so partial updates only validate what was sent.
type TaskPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	AssignedTo  *string `json:"assigned_to"`
}

const (
	statusList   = domain.StatusPending + ", " + domain.StatusInProgress + ", " + domain.StatusCompleted
	priorityList = domain.PriorityLow + ", " + domain.PriorityMedium + ", " + domain.PriorityHigh
)

func ValidateRegister(p RegisterPayload) string {
	if p.Name == "" || p.Email == "" || p.Password == "" {
		return "All fields are required"
	}
	if len(p.Password) < 8 {
		return "Password must be at least 8 characters long"
	}
	if !containsClass(p.Password, unicode.IsUpper) {
		return "Password must contain at least one uppercase letter"
	}
	if !containsClass(p.Password, unicode.IsLower) {
		return "Password must contain at least one lowercase letter"
	}
	if !containsClass(p.Password, unicode.IsDigit) {
		return "Password must contain at least one digit"
	}
	return ""
}

func ValidateCreateTask(p TaskPayload) string {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return "Title is required"
	}
	if len(*p.Title) > 200 {
		return "Title must not exceed 200 characters"
	}
	return validateCommonTaskFields(p)
}

func ValidateUpdateTask(p TaskPayload) string {
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return "Title cannot be empty"
		}
		if len(*p.Title) > 200 {
			return "Title must not exceed 200 characters"
		}
	}
	return validateCommonTaskFields(p)
}

func validateCommonTaskFields(p TaskPayload) string {
	if p.Status != nil && !domain.ValidStatus(*p.Status) {
		return "Status must be one of: " + statusList
	}
	if p.Priority != nil && !domain.ValidPriority(*p.Priority) {
		return "Priority must be one of: " + priorityList
	}
	if p.DueDate != nil {
		if _, ok := ParseDueDate(*p.DueDate); !ok {
			return "Invalid due date format"
		}
	}
	return ""
}

func ValidateTaskFilters(status, priority string) string {
	if status != "" && !domain.ValidStatus(status) {
		return "Invalid status filter. Must be one of: " + statusList
	}
	if priority != "" && !domain.ValidPriority(priority) {
		return "Invalid priority filter. Must be one of: " + priorityList
	}
	return ""
}

// ParseDueDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func ParseDueDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func containsClass(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}

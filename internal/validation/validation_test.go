package validation

import (
	"strings"
	"testing"
)

func sp(s string) *string { return &s }

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		payload RegisterPayload
		want    string
	}{
		{"valid", RegisterPayload{Name: "Ann", Email: "a@x.com", Password: "Passw0rd"}, ""},
		{"missing name", RegisterPayload{Email: "a@x.com", Password: "Passw0rd"}, "All fields are required"},
		{"missing email", RegisterPayload{Name: "Ann", Password: "Passw0rd"}, "All fields are required"},
		{"missing password", RegisterPayload{Name: "Ann", Email: "a@x.com"}, "All fields are required"},
		{"short password", RegisterPayload{Name: "Ann", Email: "a@x.com", Password: "Pw0rd"}, "Password must be at least 8 characters long"},
		{"no uppercase", RegisterPayload{Name: "Ann", Email: "a@x.com", Password: "passw0rd"}, "Password must contain at least one uppercase letter"},
		{"no lowercase", RegisterPayload{Name: "Ann", Email: "a@x.com", Password: "PASSW0RD"}, "Password must contain at least one lowercase letter"},
		{"no digit", RegisterPayload{Name: "Ann", Email: "a@x.com", Password: "Password"}, "Password must contain at least one digit"},
		// short AND no uppercase: length rule fires first
		{"rule order", RegisterPayload{Name: "Ann", Email: "a@x.com", Password: "pw0"}, "Password must be at least 8 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateRegister(tt.payload); got != tt.want {
				t.Errorf("ValidateRegister() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCreateTask(t *testing.T) {
	long := strings.Repeat("x", 201)
	tests := []struct {
		name    string
		payload TaskPayload
		want    string
	}{
		{"minimal", TaskPayload{Title: sp("Ship")}, ""},
		{"full", TaskPayload{Title: sp("Ship"), Status: sp("in_progress"), Priority: sp("high"), DueDate: sp("2026-09-01")}, ""},
		{"no title", TaskPayload{}, "Title is required"},
		{"blank title", TaskPayload{Title: sp("   ")}, "Title is required"},
		{"long title", TaskPayload{Title: sp(long)}, "Title must not exceed 200 characters"},
		{"bad status", TaskPayload{Title: sp("Ship"), Status: sp("done")}, "Status must be one of: pending, in_progress, completed"},
		{"bad priority", TaskPayload{Title: sp("Ship"), Priority: sp("urgent")}, "Priority must be one of: low, medium, high"},
		{"bad due date", TaskPayload{Title: sp("Ship"), DueDate: sp("not-a-date")}, "Invalid due date format"},
		{"rfc3339 due date", TaskPayload{Title: sp("Ship"), DueDate: sp("2026-09-01T12:00:00Z")}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCreateTask(tt.payload); got != tt.want {
				t.Errorf("ValidateCreateTask() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateUpdateTask(t *testing.T) {
	tests := []struct {
		name    string
		payload TaskPayload
		want    string
	}{
		{"empty payload is fine here", TaskPayload{}, ""},
		{"status only", TaskPayload{Status: sp("completed")}, ""},
		{"blank title rejected", TaskPayload{Title: sp("")}, "Title cannot be empty"},
		{"whitespace title rejected", TaskPayload{Title: sp("  ")}, "Title cannot be empty"},
		{"bad status", TaskPayload{Status: sp("archived")}, "Status must be one of: pending, in_progress, completed"},
		{"absent fields not validated", TaskPayload{Priority: sp("low")}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateUpdateTask(tt.payload); got != tt.want {
				t.Errorf("ValidateUpdateTask() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateTaskFilters(t *testing.T) {
	if got := ValidateTaskFilters("", ""); got != "" {
		t.Errorf("empty filters should pass, got %q", got)
	}
	if got := ValidateTaskFilters("pending", "high"); got != "" {
		t.Errorf("valid filters should pass, got %q", got)
	}
	if got := ValidateTaskFilters("done", ""); got != "Invalid status filter. Must be one of: pending, in_progress, completed" {
		t.Errorf("bad status filter: got %q", got)
	}
	if got := ValidateTaskFilters("", "urgent"); got != "Invalid priority filter. Must be one of: low, medium, high" {
		t.Errorf("bad priority filter: got %q", got)
	}
}

func TestParseDueDate(t *testing.T) {
	if _, ok := ParseDueDate("2026-09-01"); !ok {
		t.Error("plain date should parse")
	}
	if _, ok := ParseDueDate("2026-09-01T10:30:00Z"); !ok {
		t.Error("RFC3339 should parse")
	}
	if _, ok := ParseDueDate("tomorrow"); ok {
		t.Error("garbage should not parse")
	}
}

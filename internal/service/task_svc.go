package service

import (
	"context"
	"strings"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/policy"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/validation"
)

type TaskSvc struct{ tasks TaskStore }

func NewTaskSvc(tasks TaskStore) *TaskSvc {
	return &TaskSvc{tasks: tasks}
}

func (s *TaskSvc) Create(ctx context.Context, actor policy.Actor, p validation.TaskPayload) (*domain.Task, error) {
	t := &domain.Task{
		Title:     strings.TrimSpace(*p.Title),
		Status:    domain.StatusPending,
		Priority:  domain.PriorityMedium,
		CreatedBy: actor.ID,
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		if due, ok := validation.ParseDueDate(*p.DueDate); ok {
			t.DueDate = &due
		}
	}
	if p.AssignedTo != nil && *p.AssignedTo != "" {
		t.AssignedTo = p.AssignedTo
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get checks existence before permission: a task the caller cannot access
// yields a 403, a missing one a 404.
func (s *TaskSvc) Get(ctx context.Context, actor policy.Actor, id string) (*domain.Task, error) {
	t, err := s.tasks.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dec := policy.CanViewTask(actor, t); !dec.Allowed() {
		return nil, domain.Forbidden(dec.Reason)
	}
	return t, nil
}

func (s *TaskSvc) List(ctx context.Context, actor policy.Actor, status, priority, search string) ([]domain.Task, error) {
	return s.tasks.List(ctx, domain.TaskFilter{
		ViewerID: actor.ID,
		Admin:    actor.Role == domain.RoleAdmin,
		Status:   status,
		Priority: priority,
		Search:   search,
	})
}

// Update applies a partial update under the policy's decision. Fields outside
// an AllowedPartial subset are rejected outright rather than silently dropped.
func (s *TaskSvc) Update(ctx context.Context, actor policy.Actor, id string, p validation.TaskPayload) (*domain.Task, error) {
	t, err := s.tasks.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dec := policy.CanUpdateTask(actor, t)
	if !dec.Allowed() {
		return nil, domain.Forbidden(dec.Reason)
	}

	fields := updateFields(p)
	for name := range fields {
		if !dec.AllowsField(name) {
			return nil, domain.ErrAssigneeStatusOnly
		}
	}
	if len(fields) == 0 {
		// an assignee who supplied no status gets the narrower complaint
		if dec.Effect == policy.AllowedPartial {
			return nil, domain.ErrAssigneeStatusOnly
		}
		return nil, domain.ErrNoUpdateFields
	}

	return s.tasks.UpdateFields(ctx, id, fields)
}

func (s *TaskSvc) Delete(ctx context.Context, actor policy.Actor, id string) error {
	t, err := s.tasks.ByID(ctx, id)
	if err != nil {
		return err
	}
	if dec := policy.CanDeleteTask(actor, t); !dec.Allowed() {
		return domain.Forbidden(dec.Reason)
	}
	return s.tasks.Delete(ctx, id)
}

type StatusCounts struct {
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
}

type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type TaskStats struct {
	Total      int            `json:"total"`
	ByStatus   StatusCounts   `json:"byStatus"`
	ByPriority PriorityCounts `json:"byPriority"`
	UserRole   string         `json:"userRole"`
}

// Stats fetches the caller's visible tasks and aggregates counts in memory.
func (s *TaskSvc) Stats(ctx context.Context, actor policy.Actor) (*TaskStats, error) {
	tasks, err := s.tasks.List(ctx, domain.TaskFilter{
		ViewerID: actor.ID,
		Admin:    actor.Role == domain.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	stats := &TaskStats{Total: len(tasks), UserRole: actor.Role}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusCompleted:
			stats.ByStatus.Completed++
		case domain.StatusPending:
			stats.ByStatus.Pending++
		case domain.StatusInProgress:
			stats.ByStatus.InProgress++
		}
		switch t.Priority {
		case domain.PriorityHigh:
			stats.ByPriority.High++
		case domain.PriorityMedium:
			stats.ByPriority.Medium++
		case domain.PriorityLow:
			stats.ByPriority.Low++
		}
	}
	return stats, nil
}

// updateFields maps the present payload fields to their column values.
// created_by is absent on purpose: it is immutable after creation.
func updateFields(p validation.TaskPayload) map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		fields["description"] = strings.TrimSpace(*p.Description)
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.Priority != nil {
		fields["priority"] = *p.Priority
	}
	if p.DueDate != nil {
		if due, ok := validation.ParseDueDate(*p.DueDate); ok {
			fields["due_date"] = due
		}
	}
	if p.AssignedTo != nil {
		if *p.AssignedTo == "" {
			fields["assigned_to"] = nil
		} else {
			fields["assigned_to"] = *p.AssignedTo
		}
	}
	return fields
}

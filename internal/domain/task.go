package domain

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Task struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `gorm:"default:pending" json:"status"`
	Priority    string     `gorm:"default:medium" json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedBy   string     `gorm:"index;not null" json:"created_by"`
	AssignedTo  *string    `gorm:"index" json:"assigned_to,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	Creator  *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
	Assignee *User `gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL" json:"-"`
}

// IsAssignee reports whether the task is delegated to the given user.
func (t *Task) IsAssignee(userID string) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}

// TaskFilter scopes a task listing. ViewerID/Admin carry the visibility rule;
// the rest are optional equality/substring filters.
type TaskFilter struct {
	ViewerID string
	Admin    bool
	Status   string
	Priority string
	Search   string
}

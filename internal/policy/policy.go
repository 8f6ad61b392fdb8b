// Package policy is the role/ownership decision table. Functions here are
// pure: they look only at the actor and the target and return a tagged
// Decision, so every rule is testable without HTTP or a database.
package policy

import "github.com/amrenderatomar-prog/Task-Management-API/internal/domain"

type Effect int

const (
	Allowed Effect = iota
	AllowedPartial
	Denied
)

// Denial reasons double as the client-facing messages.
const (
	ReasonViewTask   = "Forbidden: You do not have permission to access this task"
	ReasonUpdateTask = "Forbidden: You do not have permission to update this task"
	ReasonDeleteTask = "Forbidden: Only the creator or admin can delete this task"
	ReasonAdminOnly  = "Forbidden: Admin access required"
	ReasonSelfDelete = "Cannot delete your own account"
)

type Decision struct {
	Effect Effect
	// Fields is the writable subset for AllowedPartial decisions.
	Fields []string
	Reason string
}

func (d Decision) Allowed() bool { return d.Effect != Denied }

// AllowsField reports whether the decision permits writing the named field.
// Full allows permit everything.
func (d Decision) AllowsField(name string) bool {
	if d.Effect == Allowed {
		return true
	}
	if d.Effect != AllowedPartial {
		return false
	}
	for _, f := range d.Fields {
		if f == name {
			return true
		}
	}
	return false
}

func allow() Decision { return Decision{Effect: Allowed} }

func allowPartial(fields ...string) Decision {
	return Decision{Effect: AllowedPartial, Fields: fields}
}

func deny(reason string) Decision { return Decision{Effect: Denied, Reason: reason} }

// Actor is the authenticated caller as far as authorization is concerned.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) isAdmin() bool { return a.Role == domain.RoleAdmin }

func CanViewTask(a Actor, t *domain.Task) Decision {
	if a.isAdmin() || t.CreatedBy == a.ID || t.IsAssignee(a.ID) {
		return allow()
	}
	return deny(ReasonViewTask)
}

// CanUpdateTask checks the creator/admin branch before the assignee branch:
// a user who is both creator and assignee keeps full rights.
func CanUpdateTask(a Actor, t *domain.Task) Decision {
	if a.isAdmin() || t.CreatedBy == a.ID {
		return allow()
	}
	if t.IsAssignee(a.ID) {
		return allowPartial("status")
	}
	return deny(ReasonUpdateTask)
}

func CanDeleteTask(a Actor, t *domain.Task) Decision {
	if a.isAdmin() || t.CreatedBy == a.ID {
		return allow()
	}
	return deny(ReasonDeleteTask)
}

func CanManageUsers(a Actor) Decision {
	if a.isAdmin() {
		return allow()
	}
	return deny(ReasonAdminOnly)
}

// CanDeleteUser blocks self-deletion for everyone, admins included.
func CanDeleteUser(a Actor, targetID string) Decision {
	if !a.isAdmin() {
		return deny(ReasonAdminOnly)
	}
	if a.ID == targetID {
		return deny(ReasonSelfDelete)
	}
	return allow()
}

package policy

import (
	"testing"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
)

var (
	creator  = Actor{ID: "u1", Role: domain.RoleUser}
	assignee = Actor{ID: "u2", Role: domain.RoleUser}
	stranger = Actor{ID: "u3", Role: domain.RoleUser}
	admin    = Actor{ID: "a1", Role: domain.RoleAdmin}
)

func task() *domain.Task {
	to := "u2"
	return &domain.Task{ID: "t1", CreatedBy: "u1", AssignedTo: &to}
}

func TestCanViewTask(t *testing.T) {
	tk := task()
	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"creator", creator, true},
		{"assignee", assignee, true},
		{"admin", admin, true},
		{"stranger", stranger, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanViewTask(tt.actor, tk)
			if d.Allowed() != tt.want {
				t.Errorf("CanViewTask(%s) allowed = %v, want %v", tt.name, d.Allowed(), tt.want)
			}
			if !tt.want && d.Reason != ReasonViewTask {
				t.Errorf("deny reason = %q", d.Reason)
			}
		})
	}
}

func TestCanUpdateTask(t *testing.T) {
	tk := task()

	if d := CanUpdateTask(creator, tk); d.Effect != Allowed {
		t.Errorf("creator should get a full allow, got %v", d.Effect)
	}
	if d := CanUpdateTask(admin, tk); d.Effect != Allowed {
		t.Errorf("admin should get a full allow, got %v", d.Effect)
	}

	d := CanUpdateTask(assignee, tk)
	if d.Effect != AllowedPartial {
		t.Fatalf("assignee should get a partial allow, got %v", d.Effect)
	}
	if !d.AllowsField("status") {
		t.Error("assignee partial allow must include status")
	}
	for _, f := range []string{"title", "priority", "due_date", "assigned_to", "created_by"} {
		if d.AllowsField(f) {
			t.Errorf("assignee must not be allowed to write %q", f)
		}
	}

	if d := CanUpdateTask(stranger, tk); d.Allowed() {
		t.Error("stranger must be denied")
	} else if d.Reason != ReasonUpdateTask {
		t.Errorf("deny reason = %q", d.Reason)
	}
}

// A user who is both creator and assignee is treated as creator: the
// creator branch wins and grants full rights.
func TestCanUpdateTaskCreatorAssigneeTieBreak(t *testing.T) {
	self := "u1"
	tk := &domain.Task{ID: "t1", CreatedBy: "u1", AssignedTo: &self}
	d := CanUpdateTask(creator, tk)
	if d.Effect != Allowed {
		t.Errorf("creator+assignee should get a full allow, got %v", d.Effect)
	}
}

func TestCanDeleteTask(t *testing.T) {
	tk := task()
	if !CanDeleteTask(creator, tk).Allowed() {
		t.Error("creator may delete")
	}
	if !CanDeleteTask(admin, tk).Allowed() {
		t.Error("admin may delete")
	}
	if CanDeleteTask(assignee, tk).Allowed() {
		t.Error("assignee may not delete")
	}
	if d := CanDeleteTask(stranger, tk); d.Allowed() || d.Reason != ReasonDeleteTask {
		t.Errorf("stranger delete: allowed=%v reason=%q", d.Allowed(), d.Reason)
	}
}

func TestCanManageUsers(t *testing.T) {
	if !CanManageUsers(admin).Allowed() {
		t.Error("admin manages users")
	}
	if d := CanManageUsers(creator); d.Allowed() || d.Reason != ReasonAdminOnly {
		t.Errorf("non-admin: allowed=%v reason=%q", d.Allowed(), d.Reason)
	}
}

func TestCanDeleteUser(t *testing.T) {
	if !CanDeleteUser(admin, "u1").Allowed() {
		t.Error("admin deletes another user")
	}
	if d := CanDeleteUser(admin, admin.ID); d.Allowed() || d.Reason != ReasonSelfDelete {
		t.Errorf("self delete must be blocked even for admin: allowed=%v reason=%q", d.Allowed(), d.Reason)
	}
	if d := CanDeleteUser(stranger, "u1"); d.Allowed() || d.Reason != ReasonAdminOnly {
		t.Errorf("non-admin: allowed=%v reason=%q", d.Allowed(), d.Reason)
	}
	// role check comes first: a non-admin targeting itself still gets the
	// admin-only denial, matching the admin-guarded route
	if d := CanDeleteUser(stranger, stranger.ID); d.Reason != ReasonAdminOnly {
		t.Errorf("non-admin self delete reason = %q", d.Reason)
	}
}

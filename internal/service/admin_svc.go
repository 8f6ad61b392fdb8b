package service

import (
	"context"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/policy"
)

type AdminSvc struct{ users UserStore }

func NewAdminSvc(users UserStore) *AdminSvc {
	return &AdminSvc{users: users}
}

func (s *AdminSvc) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UpdateRole promotes or demotes an existing user. Role validity is checked
// at the handler; target existence is checked here so the 404 is consistent.
func (s *AdminSvc) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	if _, err := s.users.ByID(ctx, id); err != nil {
		return nil, err
	}
	return s.users.UpdateRole(ctx, id, role)
}

// DeleteUser checks existence first, then the self-delete guard.
func (s *AdminSvc) DeleteUser(ctx context.Context, actor policy.Actor, id string) error {
	if _, err := s.users.ByID(ctx, id); err != nil {
		return err
	}
	dec := policy.CanDeleteUser(actor, id)
	if !dec.Allowed() {
		if dec.Reason == policy.ReasonSelfDelete {
			return domain.ErrSelfDelete
		}
		return domain.Forbidden(dec.Reason)
	}
	return s.users.Delete(ctx, id)
}

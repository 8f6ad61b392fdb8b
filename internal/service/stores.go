package service

import (
	"context"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
)

// Store interfaces live with the services that consume them; the gorm repos
// in internal/repository satisfy them, and tests swap in in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type TaskStore interface {
	Create(ctx context.Context, t *domain.Task) error
	ByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type RefreshTokenStore interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	ByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	DeleteByUser(ctx context.Context, userID string) error
}

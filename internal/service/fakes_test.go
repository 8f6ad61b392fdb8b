package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
)

// In-memory stores mirroring the gorm repos' observable behavior, including
// not-found sentinels and the visibility filter.

type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*domain.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	for _, ex := range s.users {
		if ex.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *fakeUserStore) ByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *fakeUserStore) ByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeUserStore) UpdateRole(_ context.Context, id, role string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type fakeTaskStore struct {
	tasks map[string]*domain.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: map[string]*domain.Task{}}
}

func (s *fakeTaskStore) Create(_ context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	s.tasks[t.ID] = &cp
	return nil
}

func (s *fakeTaskStore) ByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTaskStore) List(_ context.Context, f domain.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range s.tasks {
		if !f.Admin && t.CreatedBy != f.ViewerID && !t.IsAssignee(f.ViewerID) {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeTaskStore) UpdateFields(_ context.Context, id string, fields map[string]any) (*domain.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	for name, v := range fields {
		switch name {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = v.(string)
		case "status":
			t.Status = v.(string)
		case "priority":
			t.Priority = v.(string)
		case "due_date":
			due := v.(time.Time)
			t.DueDate = &due
		case "assigned_to":
			if v == nil {
				t.AssignedTo = nil
			} else {
				to := v.(string)
				t.AssignedTo = &to
			}
		}
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTaskStore) Delete(_ context.Context, id string) error {
	if _, ok := s.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

type fakeTokenStore struct {
	tokens map[string]*domain.RefreshToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*domain.RefreshToken{}}
}

func (s *fakeTokenStore) Create(_ context.Context, t *domain.RefreshToken) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	s.tokens[t.Token] = &cp
	return nil
}

func (s *fakeTokenStore) ByToken(_ context.Context, token string) (*domain.RefreshToken, error) {
	t, ok := s.tokens[token]
	if !ok {
		return nil, domain.ErrInvalidRefreshToken
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTokenStore) DeleteByUser(_ context.Context, userID string) error {
	for tok, t := range s.tokens {
		if t.UserID == userID {
			delete(s.tokens, tok)
		}
	}
	return nil
}

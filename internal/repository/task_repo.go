package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Task{})
}

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		// assigned_to is the only FK a client can set to an arbitrary value
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrInvalidAssignee
		}
		return err
	}
	return nil
}

func (r *TaskRepo) ByID(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List applies the visibility rule first, then the optional filters. Non-admin
// viewers only ever see tasks they created or are assigned to.
func (r *TaskRepo) List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error) {
	qb := r.db.WithContext(ctx).Model(&domain.Task{})
	if !f.Admin {
		qb = qb.Where("created_by = ? OR assigned_to = ?", f.ViewerID, f.ViewerID)
	}
	if f.Status != "" {
		qb = qb.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		qb = qb.Where("priority = ?", f.Priority)
	}
	if f.Search != "" {
		qb = qb.Where("title ILIKE ?", "%"+f.Search+"%")
	}
	var out []domain.Task
	err := qb.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *TaskRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Task, error) {
	if err := r.db.WithContext(ctx).Model(&domain.Task{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrInvalidAssignee
		}
		return nil, err
	}
	return r.ByID(ctx, id)
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

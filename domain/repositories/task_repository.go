package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
)

// ErrTaskNotFound is returned when a task id does not exist.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, query dto.TaskListQuery) ([]*models.Task, error)
}

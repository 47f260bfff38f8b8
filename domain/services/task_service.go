package services

import (
	"context"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, query dto.TaskListQuery) ([]*models.Task, error)
	ReplaceTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	PatchTask(ctx context.Context, taskID uuid.UUID, req *dto.PatchTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
	ToggleTaskCompletion(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
}

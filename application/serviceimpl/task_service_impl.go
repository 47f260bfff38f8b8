package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
	"todolist-api/domain/repositories"
	"todolist-api/domain/services"
	redispkg "todolist-api/infrastructure/redis"
	"todolist-api/pkg/logger"
	"todolist-api/pkg/utils"
)

const (
	taskCachePrefix = "task:detail:"
	taskCacheTTL    = 5 * time.Minute
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	cache    *redispkg.Client // optional; nil means every read hits the DB

	// wall-clock source for the write-time date; swapped in tests
	now func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// NewTaskServiceWithCache builds a task service with a Redis read cache for
// single-task lookups, invalidated on every write.
func NewTaskServiceWithCache(taskRepo repositories.TaskRepository, cache *redispkg.Client) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		cache:    cache,
		now:      time.Now,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	today := utils.DateOf(s.now())

	task := &models.Task{
		ID:        uuid.New(),
		Title:     *req.Title,
		Priority:  models.Priority(*req.Priority),
		Deadline:  deadlineFromInput(req.Deadline),
		CreatedAt: today,
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	task.Status = models.DeriveStatus(task.Deadline, task.IsCompletedByUser, today)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID)
	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	if s.cache != nil {
		var cached models.Task
		hit, err := s.cache.GetJSON(ctx, taskCacheKey(taskID), &cached)
		if err != nil {
			logger.WarnContext(ctx, "Task cache read failed", "task_id", taskID, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, taskCacheKey(taskID), task, taskCacheTTL); err != nil {
			logger.WarnContext(ctx, "Task cache write failed", "task_id", taskID, "error", err)
		}
	}
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, query dto.TaskListQuery) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) ReplaceTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for replace", "task_id", taskID)
		return nil, err
	}

	task.Title = *req.Title
	task.Priority = models.Priority(*req.Priority)
	task.Deadline = deadlineFromInput(req.Deadline)
	// full replace: omitted optional fields reset to their defaults
	task.Description = ""
	if req.Description != nil {
		task.Description = *req.Description
	}

	if err := s.finalizeWrite(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to replace task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task replaced", "task_id", taskID)
	return task, nil
}

func (s *TaskServiceImpl) PatchTask(ctx context.Context, taskID uuid.UUID, req *dto.PatchTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID)
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = models.Priority(*req.Priority)
	}
	if req.DeadlineSet {
		task.Deadline = deadlineFromInput(req.Deadline)
	}

	if err := s.finalizeWrite(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID)
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	s.invalidate(ctx, taskID)
	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return nil
}

func (s *TaskServiceImpl) ToggleTaskCompletion(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for toggle", "task_id", taskID)
		return nil, err
	}

	task.IsCompletedByUser = !task.IsCompletedByUser

	if err := s.finalizeWrite(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to toggle task completion", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task completion toggled", "task_id", taskID, "is_completed_by_user", task.IsCompletedByUser)
	return task, nil
}

// finalizeWrite applies the save-path invariants shared by every mutation:
// updated_at moves to today and status is recomputed against the current
// date, regardless of which fields changed.
func (s *TaskServiceImpl) finalizeWrite(ctx context.Context, task *models.Task) error {
	today := utils.DateOf(s.now())
	task.UpdatedAt = &today
	task.Status = models.DeriveStatus(task.Deadline, task.IsCompletedByUser, today)

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return err
	}
	s.invalidate(ctx, task.ID)
	return nil
}

func (s *TaskServiceImpl) invalidate(ctx context.Context, taskID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, taskCacheKey(taskID)); err != nil {
		logger.WarnContext(ctx, "Task cache invalidation failed", "task_id", taskID, "error", err)
	}
}

func taskCacheKey(id uuid.UUID) string {
	return taskCachePrefix + id.String()
}

// deadlineFromInput converts a validated wire value to a calendar date.
// Empty string is equivalent to null.
func deadlineFromInput(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	d, err := utils.ParseDate(*value)
	if err != nil {
		// format already enforced by validation
		return nil
	}
	return &d
}

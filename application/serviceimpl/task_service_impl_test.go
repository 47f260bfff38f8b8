package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
	"todolist-api/domain/repositories"
	"todolist-api/infrastructure/postgres"
)

func setupService(t *testing.T, today string) *TaskServiceImpl {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	svc := &TaskServiceImpl{
		taskRepo: postgres.NewTaskRepository(db),
	}
	svc.setToday(t, today)
	return svc
}

// setToday pins the wall-clock date the write path sees.
func (s *TaskServiceImpl) setToday(t *testing.T, value string) {
	t.Helper()

	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	s.now = func() time.Time { return d }
}

func strPtr(s string) *string {
	return &s
}

func createRequest(title string) *dto.CreateTaskRequest {
	return &dto.CreateTaskRequest{
		Title:    strPtr(title),
		Priority: strPtr("Medium"),
	}
}

func TestCreateTask_Defaults(t *testing.T) {
	svc := setupService(t, "2025-06-01")
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, createRequest("Read a book"))
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("ID not assigned")
	}
	if task.Description != "" {
		t.Errorf("Description = %q, want empty", task.Description)
	}
	if task.Deadline != nil {
		t.Errorf("Deadline = %v, want nil", task.Deadline)
	}
	if task.Status != models.StatusActive {
		t.Errorf("Status = %q, want %q", task.Status, models.StatusActive)
	}
	if task.IsCompletedByUser {
		t.Error("IsCompletedByUser = true, want false")
	}
	if got := task.CreatedAt.Format("2006-01-02"); got != "2025-06-01" {
		t.Errorf("CreatedAt = %q, want 2025-06-01", got)
	}
	if task.UpdatedAt != nil {
		t.Errorf("UpdatedAt = %v, want nil on create", task.UpdatedAt)
	}
}

func TestCreateTask_EmptyDeadlineMeansNull(t *testing.T) {
	svc := setupService(t, "2025-06-01")

	req := createRequest("Read a book")
	req.Deadline = strPtr("")

	task, err := svc.CreateTask(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if task.Deadline != nil {
		t.Errorf("Deadline = %v, want nil for empty-string input", task.Deadline)
	}
}

func TestCreateTask_PastDeadlineIsOverdue(t *testing.T) {
	svc := setupService(t, "2025-06-01")

	req := createRequest("File taxes")
	req.Deadline = strPtr("2025-01-01")

	task, err := svc.CreateTask(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if task.Status != models.StatusOverdue {
		t.Errorf("Status = %q, want %q", task.Status, models.StatusOverdue)
	}
}

func TestToggleTaskCompletion(t *testing.T) {
	svc := setupService(t, "2025-06-01")
	ctx := context.Background()

	req := createRequest("File taxes")
	req.Deadline = strPtr("2025-01-01")
	task, err := svc.CreateTask(ctx, req)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	// overdue + completed = late
	toggled, err := svc.ToggleTaskCompletion(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleTaskCompletion() error = %v", err)
	}
	if !toggled.IsCompletedByUser {
		t.Error("IsCompletedByUser = false after toggle, want true")
	}
	if toggled.Status != models.StatusLate {
		t.Errorf("Status = %q, want %q", toggled.Status, models.StatusLate)
	}
	if toggled.UpdatedAt == nil {
		t.Fatal("UpdatedAt = nil after toggle, want set")
	}

	// toggling twice restores the original derivation
	back, err := svc.ToggleTaskCompletion(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleTaskCompletion() error = %v", err)
	}
	if back.IsCompletedByUser {
		t.Error("IsCompletedByUser = true after second toggle, want false")
	}
	if back.Status != models.StatusOverdue {
		t.Errorf("Status = %q, want %q", back.Status, models.StatusOverdue)
	}
}

func TestToggleTaskCompletion_NotFound(t *testing.T) {
	svc := setupService(t, "2025-06-01")

	_, err := svc.ToggleTaskCompletion(context.Background(), uuid.New())
	if !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestReplaceTask_ResetsOmittedFields(t *testing.T) {
	svc := setupService(t, "2025-06-01")
	ctx := context.Background()

	req := createRequest("Plan the trip")
	req.Description = strPtr("Book hotels and flights")
	req.Deadline = strPtr("2025-07-01")
	task, err := svc.CreateTask(ctx, req)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	svc.setToday(t, "2025-06-02")

	replaced, err := svc.ReplaceTask(ctx, task.ID, &dto.UpdateTaskRequest{
		Title:    strPtr("Plan the trip v2"),
		Priority: strPtr("High"),
	})
	if err != nil {
		t.Fatalf("ReplaceTask() error = %v", err)
	}

	if replaced.Description != "" {
		t.Errorf("Description = %q, want reset to empty", replaced.Description)
	}
	if replaced.Deadline != nil {
		t.Errorf("Deadline = %v, want cleared on full replace", replaced.Deadline)
	}
	if replaced.Priority != models.PriorityHigh {
		t.Errorf("Priority = %q, want High", replaced.Priority)
	}
	if replaced.UpdatedAt == nil || replaced.UpdatedAt.Format("2006-01-02") != "2025-06-02" {
		t.Errorf("UpdatedAt = %v, want 2025-06-02", replaced.UpdatedAt)
	}
	if got := replaced.CreatedAt.Format("2006-01-02"); got != "2025-06-01" {
		t.Errorf("CreatedAt = %q, want unchanged 2025-06-01", got)
	}
}

func TestPatchTask_PartialSemantics(t *testing.T) {
	svc := setupService(t, "2025-06-01")
	ctx := context.Background()

	req := createRequest("Plan the trip")
	req.Description = strPtr("Book hotels and flights")
	req.Deadline = strPtr("2025-07-01")
	task, err := svc.CreateTask(ctx, req)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	t.Run("unset fields stay unchanged", func(t *testing.T) {
		patched, err := svc.PatchTask(ctx, task.ID, &dto.PatchTaskRequest{
			Title: strPtr("Plan the honeymoon"),
		})
		if err != nil {
			t.Fatalf("PatchTask() error = %v", err)
		}
		if patched.Title != "Plan the honeymoon" {
			t.Errorf("Title = %q", patched.Title)
		}
		if patched.Description != "Book hotels and flights" {
			t.Errorf("Description = %q, want unchanged", patched.Description)
		}
		if patched.Deadline == nil {
			t.Error("Deadline = nil, want unchanged")
		}
	})

	t.Run("explicit null clears deadline", func(t *testing.T) {
		patched, err := svc.PatchTask(ctx, task.ID, &dto.PatchTaskRequest{
			DeadlineSet: true,
		})
		if err != nil {
			t.Fatalf("PatchTask() error = %v", err)
		}
		if patched.Deadline != nil {
			t.Errorf("Deadline = %v, want cleared", patched.Deadline)
		}
	})
}

// Any write refreshes status against the current date, even when the edit
// touches nothing status-related.
func TestPatchTask_RecomputesStatusOnEveryWrite(t *testing.T) {
	svc := setupService(t, "2025-06-01")
	ctx := context.Background()

	req := createRequest("Submit expenses")
	req.Deadline = strPtr("2025-06-10")
	task, err := svc.CreateTask(ctx, req)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if task.Status != models.StatusActive {
		t.Fatalf("Status = %q, want Active before the deadline", task.Status)
	}

	svc.setToday(t, "2025-06-11")

	patched, err := svc.PatchTask(ctx, task.ID, &dto.PatchTaskRequest{
		Description: strPtr("Q2 receipts"),
	})
	if err != nil {
		t.Fatalf("PatchTask() error = %v", err)
	}
	if patched.Status != models.StatusOverdue {
		t.Errorf("Status = %q, want Overdue after the date passed", patched.Status)
	}
}

func TestDeleteTask_Twice(t *testing.T) {
	svc := setupService(t, "2025-06-01")
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, createRequest("Throw this away"))
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if err := svc.DeleteTask(ctx, task.ID); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("second DeleteTask() error = %v, want ErrTaskNotFound", err)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	svc := setupService(t, "2025-06-01")

	_, err := svc.GetTask(context.Background(), uuid.New())
	if !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("error = %v, want ErrTaskNotFound", err)
	}
}

package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todolist-api/domain/dto"
	"todolist-api/domain/models"
	"todolist-api/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update writes every column so cleared deadlines and reset flags persist.
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrTaskNotFound
	}
	return nil
}

// Severity rank per models.Priority.Rank, expressed for the database.
const priorityRankExpr = "CASE priority WHEN 'Low' THEN 1 WHEN 'Medium' THEN 2 WHEN 'High' THEN 3 WHEN 'Critical' THEN 4 ELSE 5 END"

// The status sort orders by the user completion flag, not the derived enum.
const completionRankExpr = "CASE WHEN is_completed_by_user THEN 1 ELSE 0 END"

// orderClauses maps each sort token to its ORDER BY expression per
// direction. Deadline placement is asymmetric on purpose: undated tasks go
// last when ascending and first when descending, so they never lead the
// primary direction.
var orderClauses = map[string]func(desc bool) string{
	"title": func(desc bool) string {
		return "title" + direction(desc)
	},
	"created_at": func(desc bool) string {
		return "created_at" + direction(desc)
	},
	"priority": func(desc bool) string {
		return priorityRankExpr + direction(desc)
	},
	"status": func(desc bool) string {
		return completionRankExpr + direction(desc)
	},
	"deadline": func(desc bool) string {
		if desc {
			return "CASE WHEN deadline IS NULL THEN 0 ELSE 1 END, deadline DESC"
		}
		return "CASE WHEN deadline IS NULL THEN 1 ELSE 0 END, deadline ASC"
	},
}

// escapeLike neutralizes LIKE metacharacters so filter text matches
// literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func direction(desc bool) string {
	if desc {
		return " DESC"
	}
	return " ASC"
}

func (r *TaskRepositoryImpl) List(ctx context.Context, query dto.TaskListQuery) ([]*models.Task, error) {
	db := r.db.WithContext(ctx).Model(&models.Task{})

	// Lenient filters: empty or unrecognized values constrain nothing.
	if query.Title != "" {
		pattern := "%" + escapeLike(strings.ToLower(query.Title)) + "%"
		db = db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}
	if models.Priority(query.Priority).Valid() {
		db = db.Where("priority = ?", query.Priority)
	}
	if query.Status == "true" || query.Status == "false" {
		db = db.Where("is_completed_by_user = ?", query.Status == "true")
	}

	desc := query.Order == "desc"
	clause, ok := orderClauses[query.Sort]
	if !ok {
		// unknown sort tokens fall back silently, like the filters,
		// and the order parameter falls with them
		clause = orderClauses["title"]
		desc = false
	}
	db = db.Order(clause(desc))

	var tasks []*models.Task
	err := db.Find(&tasks).Error
	return tasks, err
}

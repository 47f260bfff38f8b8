package dto

import (
	"todolist-api/domain/models"
	"todolist-api/pkg/utils"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:                task.ID,
		Title:             task.Title,
		Description:       task.Description,
		Priority:          string(task.Priority),
		Status:            string(task.Status),
		IsCompletedByUser: task.IsCompletedByUser,
		CreatedAt:         utils.FormatDate(task.CreatedAt),
	}

	if task.Deadline != nil {
		deadline := utils.FormatDate(*task.Deadline)
		resp.Deadline = &deadline
	}
	if task.UpdatedAt != nil {
		updatedAt := utils.FormatDate(*task.UpdatedAt)
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

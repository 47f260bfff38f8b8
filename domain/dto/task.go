package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CreateTaskRequest carries the writable fields for POST /tasks. Read-only
// fields (id, status, is_completed_by_user, created_at, updated_at) have no
// representation here, so clients submitting them are silently ignored.
type CreateTaskRequest struct {
	Title       *string `json:"title" validate:"required,min=4,max=255"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline" validate:"omitnil,dateonly"`
	Priority    *string `json:"priority" validate:"required,oneof=Low Medium High Critical"`
}

// UpdateTaskRequest is the full-replace (PUT) body; the required set matches
// create. An omitted deadline means no deadline, an omitted description
// resets to empty.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"required,min=4,max=255"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline" validate:"omitnil,dateonly"`
	Priority    *string `json:"priority" validate:"required,oneof=Low Medium High Critical"`
}

// PatchTaskRequest validates only the fields present. Key presence is
// tracked separately from values so explicit JSON null can be told apart
// from an absent key: `"deadline": null` clears the date, while null for
// any other field is a validation error.
type PatchTaskRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=4,max=255"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline" validate:"omitnil,dateonly"`
	Priority    *string `json:"priority" validate:"omitnil,oneof=Low Medium High Critical"`

	TitleSet       bool `json:"-"`
	DescriptionSet bool `json:"-"`
	DeadlineSet    bool `json:"-"`
	PrioritySet    bool `json:"-"`
}

func (r *PatchTaskRequest) UnmarshalJSON(data []byte) error {
	type alias PatchTaskRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, a.TitleSet = keys["title"]
	_, a.DescriptionSet = keys["description"]
	_, a.DeadlineSet = keys["deadline"]
	_, a.PrioritySet = keys["priority"]

	*r = PatchTaskRequest(a)
	return nil
}

// NullFieldErrors reports fields submitted as explicit JSON null. Deadline
// is the only nullable field; null anywhere else is rejected per field.
func (r *PatchTaskRequest) NullFieldErrors() map[string][]string {
	details := make(map[string][]string)
	if r.TitleSet && r.Title == nil {
		details["title"] = append(details["title"], "This field may not be null.")
	}
	if r.DescriptionSet && r.Description == nil {
		details["description"] = append(details["description"], "This field may not be null.")
	}
	if r.PrioritySet && r.Priority == nil {
		details["priority"] = append(details["priority"], "This field may not be null.")
	}
	return details
}

// TaskListQuery holds the list filter and sort parameters. Unrecognized
// values apply no filter and fall back to the default sort; they are never
// an error.
type TaskListQuery struct {
	Title    string `query:"title"`
	Priority string `query:"priority"`
	Status   string `query:"status"`
	Sort     string `query:"sort"`
	Order    string `query:"order"`
}

// TaskResponse is the task representation returned by every operation.
// Dates serialize as YYYY-MM-DD with no time component.
type TaskResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Deadline          *string   `json:"deadline"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
	IsCompletedByUser bool      `json:"is_completed_by_user"`
	CreatedAt         string    `json:"created_at"`
	UpdatedAt         *string   `json:"updated_at"`
}

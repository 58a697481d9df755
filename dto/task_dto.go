package dto

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required"`
	DueDate   string `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Cycle     string `json:"cycle"`
}

// UpdateTaskRequest represents the request payload for updating a task.
// Nil fields are left unchanged so PATCH can flip just the completed flag.
type UpdateTaskRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	DueDate   *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Cycle     *string `json:"cycle"`
	Completed *bool   `json:"completed"`
}

// BatchCreateTasksRequest wraps the task payload list for batch creation.
// Elements are validated one at a time during creation, not at bind time,
// so earlier entries are persisted before a later entry fails.
type BatchCreateTasksRequest struct {
	Tasks []CreateTaskRequest `json:"tasks" binding:"required"`
}

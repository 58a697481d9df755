package repositories

import (
	"github.com/stabtrack/database"
	"github.com/stabtrack/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindActiveByUserID retrieves a user's tasks, excluding soft-deleted ones
func (r *TaskRepository) FindActiveByUserID(userID string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	result := database.DB.
		Preload("Product").
		Where("user_id = ? AND deleted = ?", userID, false).
		Order("due_date asc").
		Find(&tasks)
	return tasks, result.Error
}

// FindDeletedByUserID retrieves only a user's soft-deleted tasks
func (r *TaskRepository) FindDeletedByUserID(userID string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	result := database.DB.
		Preload("Product").
		Where("user_id = ? AND deleted = ?", userID, true).
		Order("due_date asc").
		Find(&tasks)
	return tasks, result.Error
}

// FindByID retrieves a task by its ID regardless of the deleted flag,
// so the restore path can reach flagged rows
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	result := database.DB.
		Preload("Product").
		First(&task, "id = ?", id)
	return task, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task models.Task) (models.Task, error) {
	result := database.DB.Create(&task)
	return task, result.Error
}

// Save persists changes to an existing task
func (r *TaskRepository) Save(task models.Task) (models.Task, error) {
	result := database.DB.Save(&task)
	return task, result.Error
}

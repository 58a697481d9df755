package services

import (
	"time"

	"github.com/stabtrack/dto"
	"github.com/stabtrack/models"
	"github.com/stabtrack/repositories"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo    *repositories.TaskRepository
	productRepo *repositories.ProductRepository
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo:    repositories.NewTaskRepository(),
		productRepo: repositories.NewProductRepository(),
	}
}

// ListTasks retrieves a user's tasks, excluding soft-deleted ones
func (s *TaskService) ListTasks(userID string) ([]models.Task, error) {
	return s.taskRepo.FindActiveByUserID(userID)
}

// ListDeletedTasks retrieves only a user's soft-deleted tasks
func (s *TaskService) ListDeletedTasks(userID string) ([]models.Task, error) {
	return s.taskRepo.FindDeletedByUserID(userID)
}

// GetTask retrieves an owned task by ID.
// Foreign records are reported as missing, not as forbidden.
func (s *TaskService) GetTask(id string, userID string) (models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return models.Task{}, err
	}
	if task.UserID != userID {
		return models.Task{}, gorm.ErrRecordNotFound
	}
	return task, nil
}

// CreateTask creates a task owned by the requesting user. The referenced
// product must belong to the same user.
func (s *TaskService) CreateTask(req dto.CreateTaskRequest, userID string) (models.Task, error) {
	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return models.Task{}, err
	}
	if product.UserID != userID {
		return models.Task{}, gorm.ErrRecordNotFound
	}

	task := models.Task{
		UserID:    userID,
		ProductID: req.ProductID,
		Name:      req.Name,
		Type:      req.Type,
		DueDate:   req.DueDate,
		Cycle:     req.Cycle,
	}

	task, err = s.taskRepo.Create(task)
	if err != nil {
		return models.Task{}, err
	}

	return s.taskRepo.FindByID(task.ID)
}

// UpdateTask applies the non-nil fields of the request to an owned task.
// Flipping the completed flag on stamps the completion time; flipping it
// off clears it.
func (s *TaskService) UpdateTask(id string, userID string, req dto.UpdateTaskRequest) (models.Task, error) {
	task, err := s.GetTask(id, userID)
	if err != nil {
		return models.Task{}, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Type != nil {
		task.Type = *req.Type
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Cycle != nil {
		task.Cycle = *req.Cycle
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
		if task.Completed {
			if task.CompletedAt == nil {
				now := time.Now()
				task.CompletedAt = &now
			}
		} else {
			task.CompletedAt = nil
		}
	}

	return s.taskRepo.Save(task)
}

// DeleteTask marks an owned task deleted and stamps the deletion time.
// The row is never removed.
func (s *TaskService) DeleteTask(id string, userID string) error {
	task, err := s.GetTask(id, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	task.Deleted = true
	task.DeletedAt = &now

	_, err = s.taskRepo.Save(task)
	return err
}

// RestoreTask clears the deleted flag and deletion time on an owned task
func (s *TaskService) RestoreTask(id string, userID string) (models.Task, error) {
	task, err := s.GetTask(id, userID)
	if err != nil {
		return models.Task{}, err
	}

	task.Deleted = false
	task.DeletedAt = nil

	return s.taskRepo.Save(task)
}

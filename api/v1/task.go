package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stabtrack/dto"
	"github.com/stabtrack/models"
	"github.com/stabtrack/services"
	"github.com/stabtrack/utils"
	"gorm.io/gorm"
)

// TaskController handles task endpoints, including the soft-delete lifecycle
type TaskController struct {
	taskService *services.TaskService
}

// NewTaskController creates a new task controller
func NewTaskController() *TaskController {
	return &TaskController{
		taskService: services.NewTaskService(),
	}
}

// RegisterRoutes registers task routes
func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", c.ListTasks)
		tasks.POST("", c.CreateTask)
		tasks.GET("/deleted", c.ListDeletedTasks)
		tasks.POST("/batch", c.BatchCreateTasks)
		tasks.GET("/:id", c.GetTask)
		tasks.PUT("/:id", c.UpdateTask)
		tasks.PATCH("/:id", c.UpdateTask)
		tasks.DELETE("/:id", c.DeleteTask)
		tasks.POST("/:id/restore", c.RestoreTask)
	}
}

// ListTasks retrieves the caller's tasks, excluding soft-deleted ones
func (c *TaskController) ListTasks(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	tasks, err := c.taskService.ListTasks(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tasks: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tasks,
	})
}

// ListDeletedTasks retrieves only the caller's soft-deleted tasks
func (c *TaskController) ListDeletedTasks(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	tasks, err := c.taskService.ListDeletedTasks(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve deleted tasks: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tasks,
	})
}

// GetTask retrieves one of the caller's tasks by ID
func (c *TaskController) GetTask(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	task, err := c.taskService.GetTask(ctx.Param("id"), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Task not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve task: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// CreateTask creates a task owned by the caller against one of their products
func (c *TaskController) CreateTask(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	task, err := c.taskService.CreateTask(req, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Referenced product not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create task: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   task,
	})
}

// BatchCreateTasks validates and creates each payload in turn. The first
// failure aborts the batch and is reported as-is; entries created before
// it stay persisted.
func (c *TaskController) BatchCreateTasks(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	var req dto.BatchCreateTasksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	created := make([]models.Task, 0, len(req.Tasks))
	for i, taskReq := range req.Tasks {
		if err := utils.ValidateStruct(&taskReq); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Invalid task at index %d", i),
				"errors":  utils.FieldErrors(err),
			})
			return
		}

		task, err := c.taskService.CreateTask(taskReq, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": fmt.Sprintf("Referenced product not found for task at index %d", i),
				})
				return
			}
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Failed to create task at index %d: %s", i, err.Error()),
			})
			return
		}
		created = append(created, task)
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}

// UpdateTask updates one of the caller's tasks
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	task, err := c.taskService.UpdateTask(ctx.Param("id"), userID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Task not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update task: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// DeleteTask marks one of the caller's tasks deleted without removing the row
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	if err := c.taskService.DeleteTask(ctx.Param("id"), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Task not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete task: " + err.Error(),
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RestoreTask clears the deleted flag on one of the caller's tasks
func (c *TaskController) RestoreTask(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	task, err := c.taskService.RestoreTask(ctx.Param("id"), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Task not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to restore task: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

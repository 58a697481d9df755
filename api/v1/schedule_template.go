package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stabtrack/dto"
	"github.com/stabtrack/services"
	"github.com/stabtrack/utils"
	"gorm.io/gorm"
)

var scheduleTemplateService = services.NewScheduleTemplateService()

// ListScheduleTemplates retrieves the templates visible to the caller:
// their own plus the shared presets
func ListScheduleTemplates(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	templates, err := scheduleTemplateService.ListTemplates(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve schedule templates: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   templates,
	})
}

// ListPresetScheduleTemplates retrieves the preset templates visible to everyone
func ListPresetScheduleTemplates(c *gin.Context) {
	templates, err := scheduleTemplateService.ListPresets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve presets: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   templates,
	})
}

// GetScheduleTemplate retrieves a single template by ID
func GetScheduleTemplate(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	template, err := scheduleTemplateService.GetTemplate(c.Param("id"), userID.(string))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Schedule template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve schedule template: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   template,
	})
}

// CreateScheduleTemplate creates a new template owned by the caller
func CreateScheduleTemplate(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateScheduleTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	template, err := scheduleTemplateService.CreateTemplate(req, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create schedule template: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   template,
	})
}

// UpdateScheduleTemplate updates an owned template. PUT and PATCH share
// the handler: absent fields are left unchanged.
func UpdateScheduleTemplate(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.UpdateScheduleTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	template, err := scheduleTemplateService.UpdateTemplate(c.Param("id"), userID.(string), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Schedule template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update schedule template: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   template,
	})
}

// DeleteScheduleTemplate removes an owned template
func DeleteScheduleTemplate(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	if err := scheduleTemplateService.DeleteTemplate(c.Param("id"), userID.(string)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Schedule template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete schedule template: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

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

// FTCycleTemplateController handles freeze/thaw cycle template endpoints
type FTCycleTemplateController struct {
	templateService *services.FTCycleTemplateService
}

// NewFTCycleTemplateController creates a new freeze/thaw cycle template controller
func NewFTCycleTemplateController() *FTCycleTemplateController {
	return &FTCycleTemplateController{
		templateService: services.NewFTCycleTemplateService(),
	}
}

// RegisterRoutes registers freeze/thaw cycle template routes
func (c *FTCycleTemplateController) RegisterRoutes(router *gin.RouterGroup) {
	templates := router.Group("/ft-cycle-templates")
	{
		templates.GET("", c.ListTemplates)
		templates.POST("", c.CreateTemplate)
		templates.GET("/:id", c.GetTemplate)
		templates.PUT("/:id", c.UpdateTemplate)
		templates.PATCH("/:id", c.UpdateTemplate)
		templates.DELETE("/:id", c.DeleteTemplate)
	}
}

// ListTemplates retrieves the caller's cycle templates
func (c *FTCycleTemplateController) ListTemplates(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	templates, err := c.templateService.ListTemplates(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve cycle templates: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   templates,
	})
}

// GetTemplate retrieves one of the caller's cycle templates by ID
func (c *FTCycleTemplateController) GetTemplate(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	template, err := c.templateService.GetTemplate(ctx.Param("id"), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Cycle template not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve cycle template: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   template,
	})
}

// CreateTemplate creates a cycle template owned by the caller
func (c *FTCycleTemplateController) CreateTemplate(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	var req dto.CreateFTCycleTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	template, err := c.templateService.CreateTemplate(req, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create cycle template: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   template,
	})
}

// UpdateTemplate updates one of the caller's cycle templates
func (c *FTCycleTemplateController) UpdateTemplate(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	var req dto.UpdateFTCycleTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	template, err := c.templateService.UpdateTemplate(ctx.Param("id"), userID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Cycle template not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update cycle template: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   template,
	})
}

// DeleteTemplate removes one of the caller's cycle templates
func (c *FTCycleTemplateController) DeleteTemplate(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	if err := c.templateService.DeleteTemplate(ctx.Param("id"), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Cycle template not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete cycle template: " + err.Error(),
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

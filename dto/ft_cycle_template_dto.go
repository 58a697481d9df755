package dto

import "github.com/stabtrack/models"

// CreateFTCycleTemplateRequest represents the request payload for creating a freeze/thaw cycle template
type CreateFTCycleTemplateRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Cycles      models.JSONPayload `json:"cycles" binding:"required"`
}

// UpdateFTCycleTemplateRequest represents the request payload for updating a freeze/thaw cycle template
type UpdateFTCycleTemplateRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Cycles      *models.JSONPayload `json:"cycles"`
}

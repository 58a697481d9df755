package dto

import "github.com/stabtrack/models"

// CreateProductRequest represents the request payload for creating a product
type CreateProductRequest struct {
	Name               string             `json:"name" binding:"required"`
	Assignee           string             `json:"assignee" binding:"required"`
	StartDate          string             `json:"startDate" binding:"required,datetime=2006-01-02"`
	ScheduleTemplateID OptionalID         `json:"scheduleTemplateId"`
	FTCycleType        string             `json:"ftCycleType" binding:"omitempty,oneof=consecutive weekly biweekly custom"`
	FTCycleCustom      models.JSONPayload `json:"ftCycleCustom"`
}

// UpdateProductRequest represents the request payload for updating a product
type UpdateProductRequest struct {
	Name               *string            `json:"name"`
	Assignee           *string            `json:"assignee"`
	StartDate          *string            `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	ScheduleTemplateID *OptionalID        `json:"scheduleTemplateId"`
	FTCycleType        *string            `json:"ftCycleType" binding:"omitempty,oneof=consecutive weekly biweekly custom"`
	FTCycleCustom      models.JSONPayload `json:"ftCycleCustom"`
}

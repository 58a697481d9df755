package dto

// CreateScheduleTemplateRequest represents the request payload for creating a schedule template
type CreateScheduleTemplateRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	TestingIntervals []int  `json:"testingIntervals" binding:"required"`
	IsPreset         bool   `json:"isPreset"`
}

// UpdateScheduleTemplateRequest represents the request payload for updating a schedule template.
// Nil fields are left unchanged so PATCH can send a partial document.
type UpdateScheduleTemplateRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	TestingIntervals *[]int  `json:"testingIntervals"`
	IsPreset         *bool   `json:"isPreset"`
}

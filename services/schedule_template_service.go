package services

import (
	"github.com/stabtrack/dto"
	"github.com/stabtrack/models"
	"github.com/stabtrack/repositories"
	"gorm.io/gorm"
)

// ScheduleTemplateService handles business logic for schedule templates
type ScheduleTemplateService struct {
	templateRepo *repositories.ScheduleTemplateRepository
}

// NewScheduleTemplateService creates a new schedule template service instance
func NewScheduleTemplateService() *ScheduleTemplateService {
	return &ScheduleTemplateService{
		templateRepo: repositories.NewScheduleTemplateRepository(),
	}
}

// ListTemplates retrieves the templates visible to a user: their own plus presets
func (s *ScheduleTemplateService) ListTemplates(userID string) ([]models.ScheduleTemplate, error) {
	return s.templateRepo.FindVisible(userID)
}

// ListPresets retrieves the preset templates visible to every user
func (s *ScheduleTemplateService) ListPresets() ([]models.ScheduleTemplate, error) {
	return s.templateRepo.FindPresets()
}

// GetTemplate retrieves a template by ID.
// Access control: owners see their own templates, everyone sees presets.
// Foreign records are reported as missing, not as forbidden.
func (s *ScheduleTemplateService) GetTemplate(id string, userID string) (models.ScheduleTemplate, error) {
	template, err := s.templateRepo.FindByID(id)
	if err != nil {
		return models.ScheduleTemplate{}, err
	}
	if !s.visibleTo(template, userID) {
		return models.ScheduleTemplate{}, gorm.ErrRecordNotFound
	}
	return template, nil
}

// CreateTemplate creates a template owned by the requesting user.
// Presets carry no owner so they stay visible across accounts.
func (s *ScheduleTemplateService) CreateTemplate(req dto.CreateScheduleTemplateRequest, userID string) (models.ScheduleTemplate, error) {
	template := models.ScheduleTemplate{
		Name:             req.Name,
		Description:      req.Description,
		TestingIntervals: models.WeekList(req.TestingIntervals),
		IsPreset:         req.IsPreset,
	}
	if !req.IsPreset {
		template.UserID = &userID
	}
	return s.templateRepo.Create(template)
}

// UpdateTemplate applies the non-nil fields of the request to an owned template
func (s *ScheduleTemplateService) UpdateTemplate(id string, userID string, req dto.UpdateScheduleTemplateRequest) (models.ScheduleTemplate, error) {
	template, err := s.GetTemplate(id, userID)
	if err != nil {
		return models.ScheduleTemplate{}, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.TestingIntervals != nil {
		template.TestingIntervals = models.WeekList(*req.TestingIntervals)
	}
	if req.IsPreset != nil {
		template.IsPreset = *req.IsPreset
		if template.IsPreset {
			template.UserID = nil
		} else if template.UserID == nil {
			template.UserID = &userID
		}
	}

	return s.templateRepo.Save(template)
}

// DeleteTemplate removes an owned template
func (s *ScheduleTemplateService) DeleteTemplate(id string, userID string) error {
	if _, err := s.GetTemplate(id, userID); err != nil {
		return err
	}
	return s.templateRepo.Delete(id)
}

func (s *ScheduleTemplateService) visibleTo(template models.ScheduleTemplate, userID string) bool {
	if template.IsPreset {
		return true
	}
	return template.UserID != nil && *template.UserID == userID
}

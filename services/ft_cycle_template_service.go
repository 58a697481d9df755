package services

import (
	"github.com/stabtrack/dto"
	"github.com/stabtrack/models"
	"github.com/stabtrack/repositories"
	"gorm.io/gorm"
)

// FTCycleTemplateService handles business logic for freeze/thaw cycle templates
type FTCycleTemplateService struct {
	templateRepo *repositories.FTCycleTemplateRepository
}

// NewFTCycleTemplateService creates a new freeze/thaw cycle template service instance
func NewFTCycleTemplateService() *FTCycleTemplateService {
	return &FTCycleTemplateService{
		templateRepo: repositories.NewFTCycleTemplateRepository(),
	}
}

// ListTemplates retrieves the cycle templates owned by a user
func (s *FTCycleTemplateService) ListTemplates(userID string) ([]models.FTCycleTemplate, error) {
	return s.templateRepo.FindByUserID(userID)
}

// GetTemplate retrieves an owned cycle template by ID.
// Foreign records are reported as missing, not as forbidden.
func (s *FTCycleTemplateService) GetTemplate(id string, userID string) (models.FTCycleTemplate, error) {
	template, err := s.templateRepo.FindByID(id)
	if err != nil {
		return models.FTCycleTemplate{}, err
	}
	if template.UserID != userID {
		return models.FTCycleTemplate{}, gorm.ErrRecordNotFound
	}
	return template, nil
}

// CreateTemplate creates a cycle template owned by the requesting user
func (s *FTCycleTemplateService) CreateTemplate(req dto.CreateFTCycleTemplateRequest, userID string) (models.FTCycleTemplate, error) {
	template := models.FTCycleTemplate{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Cycles:      req.Cycles,
	}
	return s.templateRepo.Create(template)
}

// UpdateTemplate applies the non-nil fields of the request to an owned cycle template
func (s *FTCycleTemplateService) UpdateTemplate(id string, userID string, req dto.UpdateFTCycleTemplateRequest) (models.FTCycleTemplate, error) {
	template, err := s.GetTemplate(id, userID)
	if err != nil {
		return models.FTCycleTemplate{}, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.Cycles != nil {
		template.Cycles = *req.Cycles
	}

	return s.templateRepo.Save(template)
}

// DeleteTemplate removes an owned cycle template
func (s *FTCycleTemplateService) DeleteTemplate(id string, userID string) error {
	if _, err := s.GetTemplate(id, userID); err != nil {
		return err
	}
	return s.templateRepo.Delete(id)
}

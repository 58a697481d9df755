package repositories

import (
	"github.com/stabtrack/database"
	"github.com/stabtrack/models"
)

// FTCycleTemplateRepository handles database operations for freeze/thaw cycle templates
type FTCycleTemplateRepository struct{}

// NewFTCycleTemplateRepository creates a new freeze/thaw cycle template repository instance
func NewFTCycleTemplateRepository() *FTCycleTemplateRepository {
	return &FTCycleTemplateRepository{}
}

// FindByUserID retrieves all cycle templates belonging to a user
func (r *FTCycleTemplateRepository) FindByUserID(userID string) ([]models.FTCycleTemplate, error) {
	templates := make([]models.FTCycleTemplate, 0)
	result := database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&templates)
	return templates, result.Error
}

// FindByID retrieves a cycle template by its ID
func (r *FTCycleTemplateRepository) FindByID(id string) (models.FTCycleTemplate, error) {
	var template models.FTCycleTemplate
	result := database.DB.First(&template, "id = ?", id)
	return template, result.Error
}

// Create inserts a new cycle template into the database
func (r *FTCycleTemplateRepository) Create(template models.FTCycleTemplate) (models.FTCycleTemplate, error) {
	result := database.DB.Create(&template)
	return template, result.Error
}

// Save persists changes to an existing cycle template
func (r *FTCycleTemplateRepository) Save(template models.FTCycleTemplate) (models.FTCycleTemplate, error) {
	result := database.DB.Save(&template)
	return template, result.Error
}

// Delete removes a cycle template from the database
func (r *FTCycleTemplateRepository) Delete(id string) error {
	return database.DB.Delete(&models.FTCycleTemplate{}, "id = ?", id).Error
}

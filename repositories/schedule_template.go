package repositories

import (
	"github.com/stabtrack/database"
	"github.com/stabtrack/models"
	"gorm.io/gorm"
)

// ScheduleTemplateRepository handles database operations for schedule templates
type ScheduleTemplateRepository struct{}

// NewScheduleTemplateRepository creates a new schedule template repository instance
func NewScheduleTemplateRepository() *ScheduleTemplateRepository {
	return &ScheduleTemplateRepository{}
}

// FindVisible retrieves the templates a user can see: their own plus presets
func (r *ScheduleTemplateRepository) FindVisible(userID string) ([]models.ScheduleTemplate, error) {
	templates := make([]models.ScheduleTemplate, 0)
	result := database.DB.
		Where("user_id = ? OR is_preset = ?", userID, true).
		Order("created_at desc").
		Find(&templates)
	return templates, result.Error
}

// FindPresets retrieves all preset templates
func (r *ScheduleTemplateRepository) FindPresets() ([]models.ScheduleTemplate, error) {
	templates := make([]models.ScheduleTemplate, 0)
	result := database.DB.
		Where("is_preset = ?", true).
		Order("created_at desc").
		Find(&templates)
	return templates, result.Error
}

// FindByID retrieves a schedule template by its ID
func (r *ScheduleTemplateRepository) FindByID(id string) (models.ScheduleTemplate, error) {
	var template models.ScheduleTemplate
	result := database.DB.First(&template, "id = ?", id)
	return template, result.Error
}

// Create inserts a new schedule template into the database
func (r *ScheduleTemplateRepository) Create(template models.ScheduleTemplate) (models.ScheduleTemplate, error) {
	result := database.DB.Create(&template)
	return template, result.Error
}

// Save persists changes to an existing schedule template
func (r *ScheduleTemplateRepository) Save(template models.ScheduleTemplate) (models.ScheduleTemplate, error) {
	result := database.DB.Save(&template)
	return template, result.Error
}

// Delete removes a schedule template. Products referencing it keep working:
// the reference column is cleared in the same transaction.
func (r *ScheduleTemplateRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("schedule_template_id = ?", id).
			Update("schedule_template_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ScheduleTemplate{}, "id = ?", id).Error
	})
}

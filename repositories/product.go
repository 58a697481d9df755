package repositories

import (
	"github.com/stabtrack/database"
	"github.com/stabtrack/models"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository struct{}

// NewProductRepository creates a new product repository instance
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByUserID retrieves all products belonging to a user
func (r *ProductRepository) FindByUserID(userID string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	result := database.DB.
		Preload("ScheduleTemplate").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&products)
	return products, result.Error
}

// FindByID retrieves a product by its ID with its schedule template
func (r *ProductRepository) FindByID(id string) (models.Product, error) {
	var product models.Product
	result := database.DB.
		Preload("ScheduleTemplate").
		First(&product, "id = ?", id)
	return product, result.Error
}

// Create inserts a new product into the database
func (r *ProductRepository) Create(product models.Product) (models.Product, error) {
	result := database.DB.Create(&product)
	return product, result.Error
}

// Save persists changes to an existing product
func (r *ProductRepository) Save(product models.Product) (models.Product, error) {
	result := database.DB.Save(&product)
	return product, result.Error
}

// Delete removes a product and its tasks in one transaction
func (r *ProductRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

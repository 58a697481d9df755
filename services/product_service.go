package services

import (
	"github.com/stabtrack/dto"
	"github.com/stabtrack/models"
	"github.com/stabtrack/repositories"
	"gorm.io/gorm"
)

// ProductService handles business logic for products
type ProductService struct {
	productRepo  *repositories.ProductRepository
	templateRepo *repositories.ScheduleTemplateRepository
}

// NewProductService creates a new product service instance
func NewProductService() *ProductService {
	return &ProductService{
		productRepo:  repositories.NewProductRepository(),
		templateRepo: repositories.NewScheduleTemplateRepository(),
	}
}

// ListProducts retrieves the products owned by a user
func (s *ProductService) ListProducts(userID string) ([]models.Product, error) {
	return s.productRepo.FindByUserID(userID)
}

// GetProduct retrieves an owned product by ID.
// Foreign records are reported as missing, not as forbidden.
func (s *ProductService) GetProduct(id string, userID string) (models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return models.Product{}, err
	}
	if product.UserID != userID {
		return models.Product{}, gorm.ErrRecordNotFound
	}
	return product, nil
}

// CreateProduct creates a product owned by the requesting user. A blank
// schedule template reference stores no reference; a present one must
// point at a template the user can see.
func (s *ProductService) CreateProduct(req dto.CreateProductRequest, userID string) (models.Product, error) {
	if req.ScheduleTemplateID.Valid {
		if err := s.checkTemplateRef(req.ScheduleTemplateID.Value, userID); err != nil {
			return models.Product{}, err
		}
	}

	cycleType := models.FTCycleType(req.FTCycleType)
	if cycleType == "" {
		cycleType = models.FTCycleConsecutive
	}

	product := models.Product{
		UserID:             userID,
		Name:               req.Name,
		Assignee:           req.Assignee,
		StartDate:          req.StartDate,
		ScheduleTemplateID: req.ScheduleTemplateID.Ptr(),
		FTCycleType:        cycleType,
		FTCycleCustom:      req.FTCycleCustom,
	}

	product, err := s.productRepo.Create(product)
	if err != nil {
		return models.Product{}, err
	}

	// Reload so the response carries the template representation
	return s.productRepo.FindByID(product.ID)
}

// UpdateProduct applies the non-nil fields of the request to an owned product
func (s *ProductService) UpdateProduct(id string, userID string, req dto.UpdateProductRequest) (models.Product, error) {
	product, err := s.GetProduct(id, userID)
	if err != nil {
		return models.Product{}, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Assignee != nil {
		product.Assignee = *req.Assignee
	}
	if req.StartDate != nil {
		product.StartDate = *req.StartDate
	}
	if req.ScheduleTemplateID != nil {
		if req.ScheduleTemplateID.Valid {
			if err := s.checkTemplateRef(req.ScheduleTemplateID.Value, userID); err != nil {
				return models.Product{}, err
			}
		}
		product.ScheduleTemplateID = req.ScheduleTemplateID.Ptr()
		product.ScheduleTemplate = nil
	}
	if req.FTCycleType != nil {
		product.FTCycleType = models.FTCycleType(*req.FTCycleType)
	}
	if len(req.FTCycleCustom) > 0 {
		// An explicit null clears the stored payload
		if string(req.FTCycleCustom) == "null" {
			product.FTCycleCustom = nil
		} else {
			product.FTCycleCustom = req.FTCycleCustom
		}
	}

	if _, err := s.productRepo.Save(product); err != nil {
		return models.Product{}, err
	}

	return s.productRepo.FindByID(product.ID)
}

// DeleteProduct removes an owned product together with its tasks
func (s *ProductService) DeleteProduct(id string, userID string) error {
	if _, err := s.GetProduct(id, userID); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

// checkTemplateRef verifies that a referenced schedule template exists and
// is visible to the user (owned or preset)
func (s *ProductService) checkTemplateRef(templateID string, userID string) error {
	template, err := s.templateRepo.FindByID(templateID)
	if err != nil {
		return err
	}
	if !template.IsPreset && (template.UserID == nil || *template.UserID != userID) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

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

// ProductController handles product endpoints
type ProductController struct {
	productService *services.ProductService
}

// NewProductController creates a new product controller
func NewProductController() *ProductController {
	return &ProductController{
		productService: services.NewProductService(),
	}
}

// RegisterRoutes registers product routes
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.POST("", c.CreateProduct)
		products.GET("/:id", c.GetProduct)
		products.PUT("/:id", c.UpdateProduct)
		products.PATCH("/:id", c.UpdateProduct)
		products.DELETE("/:id", c.DeleteProduct)
	}
}

// ListProducts retrieves the caller's products
func (c *ProductController) ListProducts(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	products, err := c.productService.ListProducts(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve products: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   products,
	})
}

// GetProduct retrieves one of the caller's products by ID
func (c *ProductController) GetProduct(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	product, err := c.productService.GetProduct(ctx.Param("id"), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve product: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   product,
	})
}

// CreateProduct creates a product owned by the caller. A blank
// scheduleTemplateId is stored as no reference.
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	product, err := c.productService.CreateProduct(req, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Referenced schedule template not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create product: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   product,
	})
}

// UpdateProduct updates one of the caller's products
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"errors":  utils.FieldErrors(err),
		})
		return
	}

	product, err := c.productService.UpdateProduct(ctx.Param("id"), userID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update product: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   product,
	})
}

// DeleteProduct removes one of the caller's products and its tasks
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	userIDValue, _ := ctx.Get("userId")
	userID := userIDValue.(string)

	if err := c.productService.DeleteProduct(ctx.Param("id"), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Product not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete product: " + err.Error(),
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

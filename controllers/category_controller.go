package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse-afisha-api/models"
	"pulse-afisha-api/utils"
)

type CategoryController struct {
	db *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{db: db}
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Slug        string  `json:"slug" binding:"required,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// GetCategories lists all categories, ordered by name. Public.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var categories []models.EventCategory
	if err := cc.db.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory adds a new category. Admin only.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidSlug(req.Slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug must be lowercase letters, digits and hyphens"})
		return
	}

	var existing models.EventCategory
	if err := cc.db.Where("name = ? OR slug = ?", req.Name, req.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name or slug already exists"})
		return
	}

	category := models.EventCategory{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}

	if err := cc.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory renames a category or changes its slug/description. Admin only.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.EventCategory
	if err := cc.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if req.Slug != nil {
		if !utils.IsValidSlug(*req.Slug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug must be lowercase letters, digits and hyphens"})
			return
		}
		category.Slug = *req.Slug
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}

	var conflict models.EventCategory
	if err := cc.db.Where("(name = ? OR slug = ?) AND id <> ?", category.Name, category.Slug, category.ID).
		First(&conflict).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name or slug already exists"})
		return
	}

	if err := cc.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category that no event references. Admin only.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	var category models.EventCategory
	if err := cc.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var eventCount int64
	cc.db.Model(&models.Event{}).Where("category_id = ?", category.ID).Count(&eventCount)
	if eventCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category still has events and cannot be deleted"})
		return
	}

	if err := cc.db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/utils"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetAllCategories
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All categories", categories)
}

// CreateCategory
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.Category{
		Name: body.Name,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	idStr := c.Param("cat_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		category.Name = body.Name
	}

	if err := cc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	idStr := c.Param("cat_id")
	id, _ := strconv.Atoi(idStr)

	if err := cc.DB.Delete(&models.Category{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": id})
}

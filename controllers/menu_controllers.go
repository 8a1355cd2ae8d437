package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems lists available items for the public menu, optionally
// filtered by ?category_id=. Admins hit the same handler with ?all=true
// to include unavailable items.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	query := mc.DB.Preload("Category").Order("name")

	if c.Query("all") != "true" {
		query = query.Where("is_available = ?", true)
	}
	if catID := c.Query("category_id"); catID != "" {
		id, err := strconv.Atoi(catID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		query = query.Where("category_id = ?", id)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var item models.MenuItem
	if err := mc.DB.Preload("Category").First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"required"`
		CategoryID  *uint   `json:"category_id"`
		IsAvailable *bool   `json:"is_available"`
		ImageURL    string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		CategoryID:  body.CategoryID,
		IsAvailable: true,
		ImageURL:    body.ImageURL,
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem applies a partial update. Price changes here never touch
// existing orders; their items keep the price captured at checkout.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		CategoryID  *uint    `json:"category_id"`
		IsAvailable *bool    `json:"is_available"`
		ImageURL    *string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.Price != nil {
		item.Price = *body.Price
	}
	if body.CategoryID != nil {
		item.CategoryID = body.CategoryID
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}
	if body.ImageURL != nil {
		item.ImageURL = *body.ImageURL
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	if err := mc.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": id})
}

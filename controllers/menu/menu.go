package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

// Menu items live in one top-level collection per category (paan, chaat,
// beverages), exactly as the storefront reads them.

type MenuItemInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	FullDescription string  `json:"fulldescription"`
	Price           float64 `json:"price" binding:"required"`
	Image           string  `json:"image"`
	IsVeg           bool    `json:"isVeg"`
}

func categoryParam(c *gin.Context) (string, bool) {
	category := c.Param("category")
	if !models.ValidMenuCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown menu category"})
		return "", false
	}
	return category, true
}

// GET /menu/:category
func GetMenuItems(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := categoryParam(c)
		if !ok {
			return
		}

		docs, err := st.List(c.Request.Context(), category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
			return
		}

		items := make([]models.MenuItem, 0, len(docs))
		for _, d := range docs {
			items = append(items, models.MenuItemFromDoc(d.ID, category, d.Data))
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /menu/:category/:itemID
func GetMenuItemByID(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := categoryParam(c)
		if !ok {
			return
		}

		data, err := st.Get(c.Request.Context(), category+"/"+c.Param("itemID"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
			return
		}
		c.JSON(http.StatusOK, models.MenuItemFromDoc(c.Param("itemID"), category, data))
	}
}

// POST /admin/menu/:category
func CreateMenuItem(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := categoryParam(c)
		if !ok {
			return
		}

		var input MenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.MenuItem{
			Category:        category,
			Name:            input.Name,
			Description:     input.Description,
			FullDescription: input.FullDescription,
			Price:           input.Price,
			Image:           input.Image,
			IsVeg:           input.IsVeg,
		}
		id, err := st.Create(c.Request.Context(), category, item.Doc())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}
		item.ID = id
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /admin/menu/:category/:itemID
func UpdateMenuItem(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := categoryParam(c)
		if !ok {
			return
		}

		var input MenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		itemID := c.Param("itemID")
		err := st.Update(c.Request.Context(), category+"/"+itemID, map[string]interface{}{
			"name":            input.Name,
			"description":     input.Description,
			"fulldescription": input.FullDescription,
			"price":           input.Price,
			"image":           input.Image,
			"isVeg":           input.IsVeg,
		})
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully"})
	}
}

// DELETE /admin/menu/:category/:itemID
func DeleteMenuItem(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := categoryParam(c)
		if !ok {
			return
		}

		if err := st.Delete(c.Request.Context(), category+"/"+c.Param("itemID")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
	}
}

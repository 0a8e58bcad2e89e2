package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knsalim/paanshop-api/auth"
	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

type UpdateUserInput struct {
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
}

// GET /user
func GetUser(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		data, err := st.Get(c.Request.Context(), store.UserPath(p.ID))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, models.UserFromDoc(p.ID, data))
	}
}

// PUT /user
func UpdateUser(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Mobile != nil {
			updates["mobile"] = *input.Mobile
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		err := st.Update(c.Request.Context(), store.UserPath(p.ID), updates)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated"})
	}
}

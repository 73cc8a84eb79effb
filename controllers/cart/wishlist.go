package cartController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lequanQL/glassity-api/store"
)

type ToggleInput struct {
	ProductID string `json:"productId" binding:"required"`
}

type ReplaceInput struct {
	ProductIDs []string `json:"productIds" binding:"required"`
}

func wishlistResponse(w *store.Wishlist) gin.H {
	return gin.H{
		"ids":        w.IDs(),
		"count":      w.Count(),
		"totalPrice": w.TotalPrice(),
	}
}

// GET /user/wishlist
func GetWishlist(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, wishlistResponse(carts.Wishlist(userID)))
	}
}

// POST /user/wishlist/toggle
func ToggleWishlistItem(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		var input ToggleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		w := carts.Wishlist(userID)
		w.Toggle(input.ProductID)
		c.JSON(http.StatusOK, wishlistResponse(w))
	}
}

// PUT /user/wishlist
func ReplaceWishlist(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		var input ReplaceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		w := carts.Wishlist(userID)
		w.ReplaceAll(input.ProductIDs)
		c.JSON(http.StatusOK, wishlistResponse(w))
	}
}

// DELETE /user/wishlist
func ClearWishlist(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}
		carts.Wishlist(userID).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}

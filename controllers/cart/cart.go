package cartController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

type AddItemInput struct {
	ID    int     `json:"id" binding:"required"`
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Price float64 `json:"price"`
	Img   string  `json:"img"`
}

type QuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func sessionUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func cartResponse(cart *store.Cart) gin.H {
	return gin.H{
		"items":      cart.Items(),
		"totalPrice": cart.TotalPrice(),
		"totalItems": cart.TotalItems(),
	}
}

// GET /user/cart
func GetCart(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(carts.Cart(userID)))
	}
}

// POST /user/cart
//
// Adds a line with quantity 1, or bumps the existing line for the same
// product by 1.
func AddCartItem(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart := carts.Cart(userID)
		cart.AddItem(models.CartItem{
			ID:    input.ID,
			Name:  input.Name,
			Code:  input.Code,
			Price: input.Price,
			Img:   input.Img,
		})
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// PUT /user/cart/:product_id
func UpdateCartQuantity(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart := carts.Cart(userID)
		cart.UpdateQuantity(productID, input.Quantity)
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		cart := carts.Cart(userID)
		cart.RemoveItem(productID)
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// DELETE /user/cart
func ClearCart(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}
		carts.Cart(userID).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

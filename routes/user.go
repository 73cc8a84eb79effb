package routes

import (
	"github.com/gin-gonic/gin"

	cartController "github.com/lequanQL/glassity-api/controllers/cart"
	orderController "github.com/lequanQL/glassity-api/controllers/order"
	productController "github.com/lequanQL/glassity-api/controllers/product"
	"github.com/lequanQL/glassity-api/middleware"
)

// SetupStorefrontRoutes registers the public browse endpoints and the
// realtime order feed.
func SetupStorefrontRoutes(r *gin.Engine, deps *Deps) {
	r.GET("/products", productController.GetProducts(deps.Products))
	r.GET("/products/:id", productController.GetProductByID(deps.Products))
	r.GET("/orders/ws", deps.OrderHub.Handler)
}

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT
// middleware.
func SetupUserRoutes(r *gin.Engine, deps *Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartController.GetCart(deps.Carts))
			cartGroup.POST("", cartController.AddCartItem(deps.Carts))
			cartGroup.PUT("/:product_id", cartController.UpdateCartQuantity(deps.Carts))
			cartGroup.DELETE("/:product_id", cartController.DeleteCartItem(deps.Carts))
			cartGroup.DELETE("", cartController.ClearCart(deps.Carts))
		}

		// ──────────────── Wishlist Selection ────────────────
		wishGroup := userGroup.Group("/wishlist")
		{
			wishGroup.GET("", cartController.GetWishlist(deps.Carts))
			wishGroup.POST("/toggle", cartController.ToggleWishlistItem(deps.Carts))
			wishGroup.PUT("", cartController.ReplaceWishlist(deps.Carts))
			wishGroup.DELETE("", cartController.ClearWishlist(deps.Carts))
		}

		// ──────────────── Orders ────────────────
		userGroup.POST("/orders/place", orderController.PlaceOrder(deps.Orders, deps.Carts))
		userGroup.GET("/orders", orderController.GetUserOrders(deps.Orders))
	}
}

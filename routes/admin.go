package routes

import (
	"github.com/gin-gonic/gin"

	customerController "github.com/lequanQL/glassity-api/controllers/customer"
	orderController "github.com/lequanQL/glassity-api/controllers/order"
	productController "github.com/lequanQL/glassity-api/controllers/product"
	userController "github.com/lequanQL/glassity-api/controllers/user"
	"github.com/lequanQL/glassity-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a session
// with the admin role.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(deps.JWTSecret), middleware.RequireAdmin)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userController.GetAllUsers(deps.Users))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productController.GetProducts(deps.Products))
			productAdmin.POST("", productController.CreateProduct(deps.Products))
			productAdmin.PUT("/:id", productController.UpdateProduct(deps.Products))
			productAdmin.DELETE("/:id", productController.DeleteProduct(deps.Products))
			productAdmin.GET("/export-excel", productController.ExportProductsToExcel(deps.Products))
		}

		// ─────────── Customer Management ───────────
		customerAdmin := adminGroup.Group("/customers")
		{
			customerAdmin.GET("", customerController.GetCustomers(deps.Customers))
			customerAdmin.POST("", customerController.CreateCustomer(deps.Customers))
			customerAdmin.PUT("/:id", customerController.UpdateCustomer(deps.Customers))
			customerAdmin.DELETE("/:id", customerController.DeleteCustomer(deps.Customers))
			customerAdmin.GET("/export-csv", customerController.ExportCustomersCSV(deps.Customers))
			customerAdmin.GET("/export-excel", customerController.ExportCustomersToExcel(deps.Customers))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderController.GetAdminOrders(deps.Orders))
			orderAdmin.PUT("/:orderNumber/status", orderController.UpdateOrderStatus(deps.Orders))
		}
	}
}

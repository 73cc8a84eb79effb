package routes

import (
	"github.com/gin-gonic/gin"

	orderController "github.com/lequanQL/glassity-api/controllers/order"
	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

// Deps carries the stores constructed at startup into the handlers. Every
// handler gets its state injected here; nothing reaches for globals.
type Deps struct {
	JWTSecret string
	Products  *store.Collection[models.Product]
	Customers *store.Collection[models.Customer]
	Orders    *store.Collection[models.Order]
	Users     *store.Collection[models.User]
	Session   *store.Single[models.User]
	Carts     *store.Carts
	OrderHub  *orderController.Hub
}

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	// 1️⃣ Public routes (no middleware)
	SetupAuthRoutes(r, deps)
	SetupStorefrontRoutes(r, deps)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// 3️⃣ Admin routes (JWT + role guard)
	SetupAdminRoutes(r, deps)
}

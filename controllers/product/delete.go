package productController

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

// DELETE /admin/products/:id
//
// Existing order item snapshots are untouched by deletion.
func DeleteProduct(products *store.Collection[models.Product]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if !products.Remove(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		log.Printf("🗑️ Product ID %d deleted", id)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

package productController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

// POST /admin/products
//
// The submitted id is ignored; the collection assigns the next one.
func CreateProduct(products *store.Collection[models.Product]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Product
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Code == "" || input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code and name are required"})
			return
		}

		created, err := products.Add(input)
		if err != nil {
			log.Printf("❌ Failed to save product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		log.Printf("💾 Product %s saved", created.Code)
		c.JSON(http.StatusCreated, created)
	}
}

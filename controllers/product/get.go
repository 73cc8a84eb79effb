package productController

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

// GET /products
func GetProducts(products *store.Collection[models.Product]) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		collection := c.Query("collection")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}

		list := models.FilterProducts(products.List(), search)

		if category != "" {
			filtered := list[:0:0]
			for _, p := range list {
				if strings.EqualFold(p.Category, category) {
					filtered = append(filtered, p)
				}
			}
			list = filtered
		}
		if collection != "" {
			filtered := list[:0:0]
			for _, p := range list {
				if strings.EqualFold(p.Collection, collection) {
					filtered = append(filtered, p)
				}
			}
			list = filtered
		}

		if c.Query("sort_by") == "price" {
			sort.SliceStable(list, func(i, j int) bool {
				if sortOrder == "desc" {
					return list[i].Price > list[j].Price
				}
				return list[i].Price < list[j].Price
			})
		}

		c.JSON(http.StatusOK, list)
	}
}

// GET /products/:id
func GetProductByID(products *store.Collection[models.Product]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, ok := products.Find(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

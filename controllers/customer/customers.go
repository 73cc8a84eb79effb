package customerController

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

// GET /admin/customers
func GetCustomers(customers *store.Collection[models.Customer]) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := models.FilterCustomers(customers.List(), c.Query("search"))
		c.JSON(http.StatusOK, list)
	}
}

// POST /admin/customers
func CreateCustomer(customers *store.Collection[models.Customer]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Customer
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.FullName == "" || input.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fullName and email are required"})
			return
		}

		created, err := customers.Add(input)
		if err != nil {
			log.Printf("❌ Failed to save customer: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}

		log.Printf("💾 Customer %s saved", created.FullName)
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /admin/customers/:id
//
// Whole-record replacement. TotalOrders and TotalSpent are taken as
// submitted; they are never recomputed from order history.
func UpdateCustomer(customers *store.Collection[models.Customer]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}

		var input models.Customer
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		input.ID = id

		updated, found := customers.Update(input)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /admin/customers/:id
func DeleteCustomer(customers *store.Collection[models.Customer]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}

		if !customers.Remove(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		log.Printf("🗑️ Customer ID %d deleted", id)
		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	}
}

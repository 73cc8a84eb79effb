package orderController

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

type PlaceOrderItem struct {
	ID       int     `json:"id" binding:"required"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Img      string  `json:"img"`
}

type PlaceOrderInput struct {
	CustomerInfo   models.CustomerInfo `json:"customerInfo" binding:"required"`
	Items          []PlaceOrderItem    `json:"items" binding:"required,min=1,dive"`
	Shipping       models.ShippingInfo `json:"shipping"`
	PaymentMethod  string              `json:"paymentMethod"`
	MemberDiscount float64             `json:"memberDiscount"`
	CouponDiscount float64             `json:"couponDiscount"`
}

// POST /user/orders/place
//
// Line items become immutable snapshots: price and name are frozen as
// submitted, and later product changes never touch them. The caller's cart
// is cleared once the order is persisted.
func PlaceOrder(orders *store.Collection[models.Order], carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items := make([]models.OrderItem, 0, len(input.Items))
		subtotal := 0.0
		for _, it := range input.Items {
			line := it.Price * float64(it.Quantity)
			subtotal += line
			items = append(items, models.OrderItem{
				ID:         it.ID,
				Name:       it.Name,
				Code:       it.Code,
				Price:      it.Price,
				Quantity:   it.Quantity,
				TotalPrice: line,
				Img:        it.Img,
			})
		}

		paymentMethod := input.PaymentMethod
		if paymentMethod == "" {
			paymentMethod = "cod"
		}

		order := models.Order{
			OrderNumber:  newOrderNumber(),
			CustomerInfo: input.CustomerInfo,
			Items:        items,
			Shipping:     input.Shipping,
			Payment:      models.PaymentInfo{Method: paymentMethod, Status: "pending"},
			Totals: models.OrderTotals{
				Subtotal:       subtotal,
				Shipping:       input.Shipping.Cost,
				MemberDiscount: input.MemberDiscount,
				CouponDiscount: input.CouponDiscount,
				Total:          subtotal + input.Shipping.Cost - input.MemberDiscount - input.CouponDiscount,
			},
			CreatedAt: time.Now().UTC(),
			Status:    string(models.OrderStatusPending),
		}

		created, err := orders.Add(order)
		if err != nil {
			log.Printf("❌ Failed to save order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		log.Printf("💾 Order %s saved", created.OrderNumber)

		if userID, ok := c.Get("user_id"); ok {
			if id, isStr := userID.(string); isStr {
				carts.Cart(id).Clear()
			}
		}

		c.JSON(http.StatusCreated, created)
	}
}

// GET /user/orders
//
// Order history for the session user, matched by the email snapshot on
// each order.
func GetUserOrders(orders *store.Collection[models.Order]) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, _ := c.Get("email")
		email, _ := emailVal.(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var out []models.Order
		for _, o := range orders.List() {
			if strings.EqualFold(o.CustomerInfo.Email, email) {
				out = append(out, o)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /admin/orders
//
// Back-office view: statuses mapped onto the admin vocabulary, newest
// first, optional search over order number, customer name and email.
func GetAdminOrders(orders *store.Collection[models.Order]) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := models.ToAdminOrders(orders.List())
		list = models.FilterAdminOrders(list, c.Query("search"))
		c.JSON(http.StatusOK, list)
	}
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/orders/:orderNumber/status
//
// Takes a status in the admin vocabulary and writes the inverse-mapped
// value onto the order. A missing order number is a 404, not an error in
// the store.
func UpdateOrderStatus(orders *store.Collection[models.Order]) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status := models.FromAdminStatus(input.Status)

		updated, found := orders.UpdateMatching(
			func(o models.Order) bool { return o.OrderNumber == orderNumber },
			func(o models.Order) models.Order {
				o.Status = status
				return o
			},
		)
		if !found {
			log.Printf("⚠️ Order %s not found for status update", orderNumber)
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		log.Printf("💾 Order %s status updated to %q", orderNumber, status)
		c.JSON(http.StatusOK, models.ToAdminOrder(updated))
	}
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]
	return "ORD-" + time.Now().UTC().Format("20060102") + "-" + suffix
}

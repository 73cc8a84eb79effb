package orderController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const seedOrders = `[
	{"id": 1, "orderNumber": "ORD-20241018-9C11", "customerInfo": {"fullName": "Nguyen Minh Anh", "email": "minhanh@example.com"}, "items": [], "totals": {"total": 120}, "createdAt": "2024-10-18T08:30:00Z", "status": "shipped"}
]`

func newOrderCollection(t *testing.T, seed string) *store.Collection[models.Order] {
	t.Helper()
	return store.NewCollection(store.CollectionConfig[models.Order]{
		Key:    "orders",
		KV:     store.NopStore{},
		Seed:   store.BytesSeed(seed),
		IDOf:   func(o models.Order) int { return o.ID },
		WithID: func(o models.Order, id int) models.Order { o.ID = id; return o },
	})
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// fakeSession stands in for ValidateToken, planting the claims a verified
// JWT would have set.
func fakeSession(userID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("email", email)
	}
}

func TestPlaceOrderSnapshotsAndClearsCart(t *testing.T) {
	orders := newOrderCollection(t, `[]`)
	carts := store.NewCarts()
	carts.Cart("42").AddItem(models.CartItem{ID: 1, Name: "Aurora", Price: 100})

	r := gin.New()
	r.POST("/user/orders/place", fakeSession("42", "minhanh@example.com"), PlaceOrder(orders, carts))

	rec := doJSON(r, http.MethodPost, "/user/orders/place", `{
		"customerInfo": {"fullName": "Nguyen Minh Anh", "email": "minhanh@example.com"},
		"items": [
			{"id": 1, "name": "Aurora", "code": "GL-AUR-01", "price": 100, "quantity": 2},
			{"id": 2, "name": "Halo", "code": "GL-HAL-02", "price": 50, "quantity": 1}
		],
		"shipping": {"method": "standard", "cost": 30},
		"memberDiscount": 10,
		"couponDiscount": 5
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	assert.True(t, strings.HasPrefix(created.OrderNumber, "ORD-"), "order number %q", created.OrderNumber)
	assert.Equal(t, string(models.OrderStatusPending), created.Status)
	assert.Equal(t, 250.0, created.Totals.Subtotal)
	assert.Equal(t, 265.0, created.Totals.Total, "subtotal + shipping - discounts")
	require.Len(t, created.Items, 2)
	assert.Equal(t, 200.0, created.Items[0].TotalPrice)
	assert.Equal(t, "cod", created.Payment.Method, "payment method defaults to cod")

	assert.Empty(t, carts.Cart("42").Items(), "placing an order empties the caller's cart")
}

func TestPlaceOrderRejectsEmptyItems(t *testing.T) {
	orders := newOrderCollection(t, `[]`)

	r := gin.New()
	r.POST("/user/orders/place", PlaceOrder(orders, store.NewCarts()))

	rec := doJSON(r, http.MethodPost, "/user/orders/place",
		`{"customerInfo": {"fullName": "X", "email": "x@example.com"}, "items": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, orders.List())
}

func TestGetUserOrdersMatchesByEmail(t *testing.T) {
	orders := newOrderCollection(t, seedOrders)

	r := gin.New()
	r.GET("/user/orders", fakeSession("2", "MinhAnh@example.com"), GetUserOrders(orders))

	rec := doJSON(r, http.MethodGet, "/user/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1, "email match is case-insensitive")
	assert.Equal(t, "ORD-20241018-9C11", out[0].OrderNumber)
}

func TestGetAdminOrdersMapsStatus(t *testing.T) {
	orders := newOrderCollection(t, seedOrders)

	r := gin.New()
	r.GET("/admin/orders", GetAdminOrders(orders))

	rec := doJSON(r, http.MethodGet, "/admin/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []models.AdminOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, models.AdminStatusShipping, out[0].Status, "stored shipped surfaces as shipping")
	assert.Equal(t, "Nguyen Minh Anh", out[0].CustomerName)
}

func TestUpdateOrderStatusRoundTrip(t *testing.T) {
	orders := newOrderCollection(t, seedOrders)

	r := gin.New()
	r.PUT("/admin/orders/:orderNumber/status", UpdateOrderStatus(orders))

	rec := doJSON(r, http.MethodPut, "/admin/orders/ORD-20241018-9C11/status",
		`{"status": "shipping"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out models.AdminOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, models.AdminStatusShipping, out.Status)

	stored, ok := orders.Find(1)
	require.True(t, ok)
	assert.Equal(t, "shipped", stored.Status, "the inverse-mapped value is what gets stored")
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	orders := newOrderCollection(t, seedOrders)

	r := gin.New()
	r.PUT("/admin/orders/:orderNumber/status", UpdateOrderStatus(orders))

	rec := doJSON(r, http.MethodPut, "/admin/orders/ORD-NOPE/status", `{"status": "shipping"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewOrderNumberShape(t *testing.T) {
	n := newOrderNumber()
	parts := strings.Split(n, "-")
	require.Len(t, parts, 3, "order number %q", n)
	assert.Equal(t, "ORD", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 4)
	assert.Equal(t, strings.ToUpper(n), n)
}

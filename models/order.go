package models

import (
	"sort"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// AdminOrderStatus is the narrower vocabulary shown in the back-office.
type AdminOrderStatus string

const (
	AdminStatusPending    AdminOrderStatus = "pending"
	AdminStatusProcessing AdminOrderStatus = "processing"
	AdminStatusShipping   AdminOrderStatus = "shipping"
	AdminStatusDelivered  AdminOrderStatus = "delivered"
)

// OrderItem is an immutable snapshot of a product line at purchase time.
// Later product edits or deletions do not touch it.
type OrderItem struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
	Img        string  `json:"img"`
}

// CustomerInfo is copied onto the order at creation time. It is not a
// reference into the customers collection.
type CustomerInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Ward     string `json:"ward"`
	Note     string `json:"note"`
}

type ShippingInfo struct {
	Method string  `json:"method"`
	Cost   float64 `json:"cost"`
}

type PaymentInfo struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

type OrderTotals struct {
	Subtotal       float64 `json:"subtotal"`
	Shipping       float64 `json:"shipping"`
	MemberDiscount float64 `json:"memberDiscount"`
	CouponDiscount float64 `json:"couponDiscount"`
	Total          float64 `json:"total"`
}

type Order struct {
	ID           int          `json:"id"`
	OrderNumber  string       `json:"orderNumber"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Items        []OrderItem  `json:"items"`
	Shipping     ShippingInfo `json:"shipping"`
	Payment      PaymentInfo  `json:"payment"`
	Totals       OrderTotals  `json:"totals"`
	CreatedAt    time.Time    `json:"createdAt"`
	Status       string       `json:"status"`
}

// ToAdminStatus maps an order status onto the back-office vocabulary.
// "cancelled" collapses into "delivered" here and the collapse is
// irreversible; FromAdminStatus cannot reconstruct it. Kept as observed
// behavior pending product-owner clarification.
func ToAdminStatus(status string) AdminOrderStatus {
	switch strings.ToLower(status) {
	case "processing":
		return AdminStatusProcessing
	case "shipped":
		return AdminStatusShipping
	case "delivered":
		return AdminStatusDelivered
	case "cancelled":
		return AdminStatusDelivered
	default:
		return AdminStatusPending
	}
}

// FromAdminStatus maps a back-office status back to the order vocabulary.
// Unknown values pass through unchanged.
func FromAdminStatus(adminStatus string) string {
	switch strings.ToLower(adminStatus) {
	case "pending":
		return string(OrderStatusPending)
	case "processing":
		return string(OrderStatusProcessing)
	case "shipping":
		return string(OrderStatusShipped)
	case "delivered":
		return string(OrderStatusDelivered)
	default:
		return adminStatus
	}
}

// AdminOrder is the flattened back-office view of an order. The order
// number doubles as the display id.
type AdminOrder struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone"`
	Items           []AdminOrderItem `json:"items"`
	Total           float64          `json:"total"`
	Status          AdminOrderStatus `json:"status"`
	ShippingAddress string           `json:"shippingAddress"`
}

type AdminOrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

func ToAdminOrder(o Order) AdminOrder {
	items := make([]AdminOrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		name := it.Name
		if name == "" {
			name = it.Code
		}
		items = append(items, AdminOrderItem{
			ID:       it.ID,
			Name:     name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Img,
		})
	}
	return AdminOrder{
		ID:            o.OrderNumber,
		Date:          o.CreatedAt,
		CustomerName:  o.CustomerInfo.FullName,
		CustomerEmail: o.CustomerInfo.Email,
		CustomerPhone: o.CustomerInfo.Phone,
		Items:         items,
		Total:         o.Totals.Total,
		Status:        ToAdminStatus(o.Status),
		ShippingAddress: strings.Join([]string{
			o.CustomerInfo.Address, o.CustomerInfo.Ward,
			o.CustomerInfo.District, o.CustomerInfo.City,
		}, ", "),
	}
}

// ToAdminOrders converts and sorts newest first.
func ToAdminOrders(orders []Order) []AdminOrder {
	out := make([]AdminOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToAdminOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// FilterAdminOrders matches order number, customer name or email.
func FilterAdminOrders(orders []AdminOrder, term string) []AdminOrder {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return orders
	}
	var out []AdminOrder
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), term) ||
			strings.Contains(strings.ToLower(o.CustomerName), term) ||
			strings.Contains(strings.ToLower(o.CustomerEmail), term) {
			out = append(out, o)
		}
	}
	return out
}

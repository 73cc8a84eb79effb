package store

import (
	"sync"

	"github.com/lequanQL/glassity-api/models"
)

// Cart is the reactive cart state for one user. It is never persisted; a
// restart starts every cart empty, like a fresh session. Totals are
// recomputed from the current snapshot on every call.
type Cart struct {
	items *Container[models.CartItem]
}

func NewCart() *Cart {
	return &Cart{items: NewContainer[models.CartItem]()}
}

func (c *Cart) Items() []models.CartItem {
	return c.items.Get()
}

// AddItem puts the product in the cart with quantity 1, or bumps the
// existing line by 1. The cart holds at most one line per product id.
func (c *Cart) AddItem(item models.CartItem) {
	items := c.items.Get()
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			c.items.Set(items)
			return
		}
	}
	item.Quantity = 1
	c.items.Set(append(items, item))
}

// UpdateQuantity sets the quantity of a line. Values below 1 are ignored;
// removal is an explicit RemoveItem.
func (c *Cart) UpdateQuantity(id, quantity int) {
	if quantity < 1 {
		return
	}
	items := c.items.Get()
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			c.items.Set(items)
			return
		}
	}
}

func (c *Cart) RemoveItem(id int) {
	items := c.items.Get()
	remaining := items[:0:0]
	for _, item := range items {
		if item.ID != id {
			remaining = append(remaining, item)
		}
	}
	c.items.Set(remaining)
}

func (c *Cart) Clear() {
	c.items.Set([]models.CartItem{})
}

func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items.Get() {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) TotalItems() int {
	count := 0
	for _, item := range c.items.Get() {
		count += item.Quantity
	}
	return count
}

// Carts hands out per-user cart and wishlist state, creating them lazily.
type Carts struct {
	mu        sync.Mutex
	carts     map[string]*Cart
	wishlists map[string]*Wishlist
}

func NewCarts() *Carts {
	return &Carts{
		carts:     make(map[string]*Cart),
		wishlists: make(map[string]*Wishlist),
	}
}

func (r *Carts) Cart(userID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userID]
	if !ok {
		c = NewCart()
		r.carts[userID] = c
	}
	return c
}

// Wishlist returns the user's wishlist, bound to the same user's cart for
// its derived totals.
func (r *Carts) Wishlist(userID string) *Wishlist {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wishlists[userID]
	if !ok {
		c, cok := r.carts[userID]
		if !cok {
			c = NewCart()
			r.carts[userID] = c
		}
		w = NewWishlist(c)
		r.wishlists[userID] = w
	}
	return w
}

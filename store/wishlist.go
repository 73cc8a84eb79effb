package store

import (
	"sort"
	"strconv"
	"sync"
)

// Wishlist is a set of product-id strings marking cart lines selected for
// checkout. Despite the name it carries no items of its own; count and
// total derive from the bound cart's lines whose id is a member.
type Wishlist struct {
	mu   sync.RWMutex
	ids  map[string]struct{}
	cart *Cart
}

func NewWishlist(cart *Cart) *Wishlist {
	return &Wishlist{ids: make(map[string]struct{}), cart: cart}
}

func (w *Wishlist) Toggle(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.ids[productID]; ok {
		delete(w.ids, productID)
	} else {
		w.ids[productID] = struct{}{}
	}
}

func (w *Wishlist) Has(productID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.ids[productID]
	return ok
}

func (w *Wishlist) Clear() {
	w.mu.Lock()
	w.ids = make(map[string]struct{})
	w.mu.Unlock()
}

// ReplaceAll swaps the whole selection.
func (w *Wishlist) ReplaceAll(productIDs []string) {
	ids := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		ids[id] = struct{}{}
	}
	w.mu.Lock()
	w.ids = ids
	w.mu.Unlock()
}

func (w *Wishlist) IDs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.ids))
	for id := range w.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// TotalPrice sums price x quantity over cart lines in the selection.
func (w *Wishlist) TotalPrice() float64 {
	total := 0.0
	for _, item := range w.cart.Items() {
		if w.Has(strconv.Itoa(item.ID)) {
			total += item.Price * float64(item.Quantity)
		}
	}
	return total
}

// Count sums quantities over cart lines in the selection.
func (w *Wishlist) Count() int {
	count := 0
	for _, item := range w.cart.Items() {
		if w.Has(strconv.Itoa(item.ID)) {
			count += item.Quantity
		}
	}
	return count
}

package models

// CartItem is a denormalized line in a cart. Quantity is always >= 1;
// dropping below 1 means removal, never a zero-quantity line.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Price    float64 `json:"price"`
	Img      string  `json:"img"`
	Quantity int     `json:"quantity"`
}

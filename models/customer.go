package models

import "strings"

// Customer is a back-office record. TotalOrders and TotalSpent are stored
// values taken as submitted; nothing recomputes them from order history, so
// they drift once orders are placed.
type Customer struct {
	ID              int     `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	FullName        string  `json:"fullName"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	District        string  `json:"district"`
	Ward            string  `json:"ward"`
	DateOfBirth     string  `json:"dateOfBirth"`
	Gender          string  `json:"gender"`
	JoinedDate      string  `json:"joinedDate"`
	LastOrderDate   string  `json:"lastOrderDate"`
	TotalOrders     int     `json:"totalOrders"`
	TotalSpent      float64 `json:"totalSpent"`
	Status          string  `json:"status"`
	MembershipLevel string  `json:"membershipLevel"`
	Notes           string  `json:"notes"`
}

// FilterCustomers matches full name, email and username case-insensitively;
// the phone number is matched as a plain substring.
func FilterCustomers(customers []Customer, term string) []Customer {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return customers
	}
	lowered := strings.ToLower(trimmed)
	var out []Customer
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.FullName), lowered) ||
			strings.Contains(strings.ToLower(c.Email), lowered) ||
			strings.Contains(strings.ToLower(c.Username), lowered) ||
			strings.Contains(c.Phone, trimmed) {
			out = append(out, c)
		}
	}
	return out
}

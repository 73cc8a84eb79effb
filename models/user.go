package models

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a seeded account. Passwords are stored in plain text because the
// seed data ships them that way; this mock has no credential hardening.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt"`
}

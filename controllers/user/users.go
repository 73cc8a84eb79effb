package userController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

// publicUser is a user record without the credential field.
type publicUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// GET /admin/users
func GetAllUsers(users *store.Collection[models.User]) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := users.List()
		out := make([]publicUser, 0, len(list))
		for _, u := range list {
			out = append(out, publicUser{
				ID:        u.ID,
				Username:  u.Username,
				Email:     u.Email,
				FullName:  u.FullName,
				Role:      u.Role,
				Avatar:    u.Avatar,
				Phone:     u.Phone,
				Address:   u.Address,
				CreatedAt: u.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

package authController

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// POST /auth/login
//
// Credentials are matched against the seeded users collection. A match
// issues a JWT and records the user as the current session; the last
// successful login wins the session slot.
func Login(users *store.Collection[models.User], session *store.Single[models.User], secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var found *models.User
		for _, u := range users.List() {
			if strings.EqualFold(u.Email, input.Email) && u.Password == input.Password {
				user := u
				found = &user
				break
			}
		}
		if found == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if err := session.Set(*found); err != nil {
			log.Printf("❌ Failed to persist current user: %v", err)
		}
		log.Printf("✅ %s logged in", found.FullName)

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    found,
			"token":   issueJWT(*found, secret),
		})
	}
}

// POST /auth/signup
func Signup(users *store.Collection[models.User]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		for _, u := range users.List() {
			if strings.EqualFold(u.Email, input.Email) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
				return
			}
		}

		created, err := users.Add(models.User{
			Username:  input.Username,
			Email:     input.Email,
			Password:  input.Password,
			FullName:  input.FullName,
			Role:      models.RoleCustomer,
			Phone:     input.Phone,
			Address:   input.Address,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			log.Printf("❌ Failed to save user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// POST /auth/logout
func Logout(session *store.Single[models.User]) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Clear()
		log.Println("👋 User logged out")
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /auth/session
//
// Restores the current session record, surviving a server restart when
// durable storage is present.
func Session(session *store.Single[models.User]) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := session.Get()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func issueJWT(user models.User, secret string) string {
	claims := jwt.MapClaims{
		"user_id": strconv.Itoa(user.ID),
		"email":   user.Email,
		"role":    user.Role,
		"name":    user.FullName,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return ""
	}
	return signedToken
}

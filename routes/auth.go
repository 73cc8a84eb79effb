package routes

import (
	"github.com/gin-gonic/gin"

	authController "github.com/lequanQL/glassity-api/controllers/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps *Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login(deps.Users, deps.Session, deps.JWTSecret))
		authGroup.POST("/signup", authController.Signup(deps.Users))
		authGroup.POST("/logout", authController.Logout(deps.Session))
		authGroup.GET("/session", authController.Session(deps.Session))
	}
}

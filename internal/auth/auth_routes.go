package auth

import (
	"github.com/uxchapter/skillboard/config"
	mw "github.com/uxchapter/skillboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/refresh-token", controller.RefreshToken)
	}

	protected := router.Group("/auth")
	protected.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		protected.GET("/me", controller.GetProfile)
		protected.POST("/logout", controller.Logout)
	}
}

package skill

import (
	"github.com/uxchapter/skillboard/config"
	mw "github.com/uxchapter/skillboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSkillRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	skillRepo := NewSkillRepository(db)
	skillController := NewSkillController(skillRepo, appConfig)

	// Reference data is read-only but still requires a signed-in caller.
	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authenticated.GET("/skills", skillController.GetAllSkills)
		authenticated.GET("/categories", skillController.GetAllCategories)
		authenticated.GET("/categories/:slug/skills", skillController.GetSkillsForCategory)
	}
}

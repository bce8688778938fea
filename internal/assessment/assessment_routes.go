package assessment

import (
	"github.com/uxchapter/skillboard/config"
	mw "github.com/uxchapter/skillboard/internal/middleware"
	"github.com/uxchapter/skillboard/internal/skill"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAssessmentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	repo := NewAssessmentRepository(db)
	skillRepo := skill.NewSkillRepository(db)
	controller := NewAssessmentController(repo, skillRepo, appConfig)

	assessments := router.Group("/assessments")
	assessments.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		assessments.POST("", controller.SubmitAssessment)
		assessments.GET("/me", controller.GetMyAssessments)
		assessments.GET("/me/average", controller.GetMyOverallAverage)
		assessments.GET("/me/categories", controller.GetMyCategoryAverages)

		// Moderation; role is enforced inside the handlers via the
		// canModerate capability check.
		assessments.GET("/pending", controller.GetPendingAssessments)
		assessments.POST("/:id/approve", controller.ApproveAssessment)
		assessments.POST("/:id/reject", controller.RejectAssessment)
	}
}

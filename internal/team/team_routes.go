package team

import (
	"github.com/uxchapter/skillboard/config"
	mw "github.com/uxchapter/skillboard/internal/middleware"
	"github.com/uxchapter/skillboard/internal/skill"
	"github.com/uxchapter/skillboard/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	skillRepo := skill.NewSkillRepository(db)
	teamController := NewTeamController(teamRepo, skillRepo, appConfig)

	teams := router.Group("/team")
	teams.Use(mw.AuthMiddleware(jwtSecret, db))
	teams.Use(rmiddleware.LeaderOrHeadChapterMiddleware(db))
	{
		teams.GET("/stats", teamController.GetTeamStats)
		teams.GET("/members", teamController.GetTeamMembers)
		teams.GET("/members/:id/assessments", teamController.GetMemberAssessments)
		teams.GET("/members/:id/highlights", teamController.GetMemberHighlights)
	}
}

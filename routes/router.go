package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/uxchapter/skillboard/config"
	"github.com/uxchapter/skillboard/internal/assessment"
	"github.com/uxchapter/skillboard/internal/auth"
	"github.com/uxchapter/skillboard/internal/skill"
	"github.com/uxchapter/skillboard/internal/team"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	appConfig := config.GetConfig()
	jwtSecret := appConfig.JWT.AccessTokenSecret

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "skillboard",
			"docs":    "/swagger/index.html",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, config.DB, appConfig, jwtSecret)
	skill.RegisterSkillRoutes(api, config.DB, appConfig, jwtSecret)
	assessment.RegisterAssessmentRoutes(api, config.DB, appConfig, jwtSecret)
	team.RegisterTeamRoutes(api, config.DB, appConfig, jwtSecret)

	return r
}

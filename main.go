package main

import (
	"log"

	"github.com/uxchapter/skillboard/config"
	_ "github.com/uxchapter/skillboard/docs"
	"github.com/uxchapter/skillboard/internal/assessment"
	"github.com/uxchapter/skillboard/internal/skill"
	"github.com/uxchapter/skillboard/internal/user"
	"github.com/uxchapter/skillboard/routes"
)

// @title Skillboard REST API
// @version 1.0
// @description Self-assessment and approval service for the UX chapter skill matrix.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&skill.Category{}, &skill.Skill{},
		&assessment.SkillAssessment{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := skill.Seed(config.DB); err != nil {
		log.Fatalf("Skill catalog seed failed: %v", err)
	}

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

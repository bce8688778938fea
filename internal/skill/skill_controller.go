package skill

import (
	"net/http"

	"github.com/uxchapter/skillboard/config"
	"github.com/uxchapter/skillboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// SkillController serves the static skill/category reference data.
type SkillController struct {
	repo   SkillRepository
	config *config.Config
}

// NewSkillController creates a new SkillController.
func NewSkillController(repo SkillRepository, cfg *config.Config) *SkillController {
	return &SkillController{
		repo:   repo,
		config: cfg,
	}
}

// GetAllSkills godoc
// @Summary Get all skills
// @Description Get the full skill catalog grouped by category order
// @Tags Skills
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Skill}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /skills [get]
func (sc *SkillController) GetAllSkills(c *gin.Context) {
	skills, err := sc.repo.GetAllSkills()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch skills", err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Skills retrieved successfully", skills)
}

// GetAllCategories godoc
// @Summary Get all skill categories
// @Description Get the static category reference data
// @Tags Skills
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Category}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /categories [get]
func (sc *SkillController) GetAllCategories(c *gin.Context) {
	categories, err := sc.repo.GetAllCategories()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch categories", err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetSkillsForCategory godoc
// @Summary Get skills in a category
// @Description Get every skill belonging to one category
// @Tags Skills
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} responses.SuccessResponse{data=[]Skill}
// @Failure 404 {object} responses.ErrorResponse "Category not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /categories/{slug}/skills [get]
func (sc *SkillController) GetSkillsForCategory(c *gin.Context) {
	slug := c.Param("slug")

	category, err := sc.repo.GetCategoryBySlug(slug)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch category", err.Error())
		return
	}
	if category == nil {
		responses.NotFound(c, "Category")
		return
	}

	skills, err := sc.repo.GetSkillsByCategory(slug)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch skills", err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Skills retrieved successfully", gin.H{
		"category": category,
		"skills":   skills,
	})
}

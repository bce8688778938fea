package assessment

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/uxchapter/skillboard/config"
	"github.com/uxchapter/skillboard/internal/middleware"
	"github.com/uxchapter/skillboard/internal/skill"
	"github.com/uxchapter/skillboard/internal/user"
	"github.com/uxchapter/skillboard/pkg/responses"
	"github.com/uxchapter/skillboard/pkg/validator"
	"github.com/gin-gonic/gin"
)

// AssessmentController handles the self-assessment workflow: submission,
// leader approval/rejection, and the read-side aggregates.
type AssessmentController struct {
	repo   AssessmentRepository
	skills skill.SkillRepository
	config *config.Config
}

// NewAssessmentController creates a new AssessmentController.
func NewAssessmentController(repo AssessmentRepository, skills skill.SkillRepository, cfg *config.Config) *AssessmentController {
	return &AssessmentController{
		repo:   repo,
		skills: skills,
		config: cfg,
	}
}

// --- DTOs (Data Transfer Objects) for requests/responses ---

type SubmitAssessmentRequest struct {
	SkillID       *uint    `json:"skill_id" binding:"omitempty"`
	SkillTitle    string   `json:"skill_title" binding:"omitempty,max=200"`
	NumericLevel  *float64 `json:"numeric_level" binding:"required"`
	Justification string   `json:"justification" binding:"omitempty,max=5000"`
	Evidence      string   `json:"evidence" binding:"omitempty,max=5000"`
}

type RejectAssessmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type MyAssessmentResponse struct {
	SkillID       uint     `json:"skill_id"`
	SkillName     string   `json:"skill_name"`
	Category      string   `json:"category"`
	NumericLevel  *float64 `json:"numeric_level"` // nil when the record is not rated
	Level         string   `json:"level"`
	Progress      int      `json:"progress"`
	Status        string   `json:"status"`
	Justification string   `json:"justification"`
	Evidence      string   `json:"evidence"`
}

type PendingAssessmentResponse struct {
	ID            uint      `json:"id"`
	MemberName    string    `json:"member_name"`
	MemberRole    string    `json:"member_role"`
	MemberAvatar  string    `json:"member_avatar"`
	SkillName     string    `json:"skill_name"`
	Category      string    `json:"category"`
	Level         string    `json:"level"`
	NumericLevel  *int      `json:"numeric_level"`
	Justification string    `json:"justification"`
	Evidence      string    `json:"evidence"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	UserID        uint      `json:"user_id"`
	SkillID       uint      `json:"skill_id"`
}

type OverallAverageResponse struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// canModerate is the capability predicate for the approval workflow: only
// leaders may approve or reject. The reporting relationship is deliberately
// not checked here; visibility is scoped at the list level instead.
func canModerate(u *user.User) bool {
	return u != nil && u.Role == user.RoleLeader
}

// resolveCaller loads the authenticated caller's profile.
func (ac *AssessmentController) resolveCaller(c *gin.Context) *user.User {
	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return nil
	}
	caller, err := ac.repo.GetUserByID(callerID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load caller profile", err.Error())
		return nil
	}
	if caller == nil {
		responses.Unauthorized(c, "User not found")
		return nil
	}
	return caller
}

// SubmitAssessment godoc
// @Summary Submit a self-assessment
// @Description Rate a skill 0-5 with a justification. Resubmitting an already rated skill overwrites it and re-opens the approval workflow.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param assessment body SubmitAssessmentRequest true "Submission; provide skill_id or skill_title"
// @Success 200 {object} responses.SuccessResponse{data=SkillAssessment}
// @Failure 400 {object} responses.ErrorResponse "Validation error or non-finite level"
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /assessments [post]
// @Security BearerAuth
func (ac *AssessmentController) SubmitAssessment(c *gin.Context) {
	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if req.SkillID == nil && strings.TrimSpace(req.SkillTitle) == "" {
		responses.BadRequest(c, "Provide skill_id or skill_title")
		return
	}

	normalized, err := NormalizeLevel(*req.NumericLevel)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	// Resolve the skill; submissions never auto-create skills.
	var target *skill.Skill
	if req.SkillID != nil {
		target, err = ac.skills.GetSkillByID(*req.SkillID)
	} else {
		target, err = ac.skills.FindSkillByName(req.SkillTitle)
	}
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to resolve skill", err.Error())
		return
	}
	if target == nil {
		responses.NotFound(c, "Skill")
		return
	}

	justification := strings.TrimSpace(req.Justification)
	if justification == "" {
		justification = JustificationPlaceholder
	}

	record := SkillAssessment{
		UserID:        callerID,
		SkillID:       target.ID,
		NumericLevel:  &normalized,
		Level:         LegacyLevel(normalized),
		Justification: justification,
		Evidence:      strings.TrimSpace(req.Evidence),
		Status:        StatusPending,
	}

	if err := ac.repo.Upsert(&record); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to save assessment", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Assessment submitted, pending leader approval", record)
}

// ApproveAssessment godoc
// @Summary Approve a pending assessment
// @Description Leader-only. The transition only fires while the record is still pending; a lost race is reported as success with no change.
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Invalid id"
// @Failure 403 {object} responses.ErrorResponse "Caller is not a leader"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /assessments/{id}/approve [post]
// @Security BearerAuth
func (ac *AssessmentController) ApproveAssessment(c *gin.Context) {
	caller := ac.resolveCaller(c)
	if caller == nil {
		return
	}
	if !canModerate(caller) {
		responses.Forbidden(c, "Only leaders can approve assessments")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid assessment id")
		return
	}

	changed, err := ac.repo.Approve(uint(id), caller.ID, time.Now())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to approve assessment", err.Error())
		return
	}

	// changed == false means the record was no longer pending; the caller
	// does not need to treat that as a failure.
	responses.SendSuccess(c, http.StatusOK, "Assessment approved", gin.H{"changed": changed})
}

// RejectAssessment godoc
// @Summary Reject a pending assessment
// @Description Leader-only; a non-blank reason is mandatory.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param rejection body RejectAssessmentRequest true "Rejection reason"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Invalid id or blank reason"
// @Failure 403 {object} responses.ErrorResponse "Caller is not a leader"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /assessments/{id}/reject [post]
// @Security BearerAuth
func (ac *AssessmentController) RejectAssessment(c *gin.Context) {
	caller := ac.resolveCaller(c)
	if caller == nil {
		return
	}
	if !canModerate(caller) {
		responses.Forbidden(c, "Only leaders can reject assessments")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid assessment id")
		return
	}

	var req RejectAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		responses.BadRequest(c, "A reason is required to reject an assessment")
		return
	}

	changed, err := ac.repo.Reject(uint(id), caller.ID, req.Reason, time.Now())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to reject assessment", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Assessment rejected", gin.H{"changed": changed})
}

// skillIndex loads the catalog once per request for name/category lookups.
func (ac *AssessmentController) skillIndex() (map[uint]skill.Skill, error) {
	skills, err := ac.skills.GetAllSkills()
	if err != nil {
		return nil, err
	}
	index := make(map[uint]skill.Skill, len(skills))
	for _, s := range skills {
		index[s.ID] = s
	}
	return index, nil
}

// GetMyAssessments godoc
// @Summary Get the caller's assessments
// @Description All of the caller's self-assessments with resolved skill metadata and progress
// @Tags Assessments
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]MyAssessmentResponse}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /assessments/me [get]
// @Security BearerAuth
func (ac *AssessmentController) GetMyAssessments(c *gin.Context) {
	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	rows, err := ac.repo.ListByUser(callerID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch assessments", err.Error())
		return
	}

	index, err := ac.skillIndex()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch skills", err.Error())
		return
	}

	out := make([]MyAssessmentResponse, 0, len(rows))
	for i := range rows {
		row := rows[i]
		item := MyAssessmentResponse{
			SkillID:       row.SkillID,
			Level:         row.Level,
			Progress:      Progress(row.NumericLevel, row.Level),
			Status:        row.Status,
			Justification: row.Justification,
			Evidence:      row.Evidence,
		}
		if lvl, ok := CurrentLevel(row.NumericLevel, row.Level); ok {
			item.NumericLevel = &lvl
		}
		if s, ok := index[row.SkillID]; ok {
			item.SkillName = s.Name
			item.Category = s.CategorySlug
		}
		out = append(out, item)
	}
	responses.SendSuccess(c, http.StatusOK, "Assessments retrieved successfully", out)
}

// GetMyOverallAverage godoc
// @Summary Get the caller's approved average
// @Description Mean 0-5 level across the caller's approved assessments, one decimal. Count disambiguates "no data" from a zero average.
// @Tags Assessments
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=OverallAverageResponse}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /assessments/me/average [get]
// @Security BearerAuth
func (ac *AssessmentController) GetMyOverallAverage(c *gin.Context) {
	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	rows, err := ac.repo.ListApprovedByUser(callerID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch assessments", err.Error())
		return
	}

	average, count := OverallAverage(rows)
	responses.SendSuccess(c, http.StatusOK, "Average computed successfully", OverallAverageResponse{
		Average: average,
		Count:   count,
	})
}

// GetMyCategoryAverages godoc
// @Summary Get the caller's per-category approved averages
// @Tags Assessments
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]CategoryAverage}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /assessments/me/categories [get]
// @Security BearerAuth
func (ac *AssessmentController) GetMyCategoryAverages(c *gin.Context) {
	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	rows, err := ac.repo.ListApprovedByUser(callerID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch assessments", err.Error())
		return
	}

	index, err := ac.skillIndex()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch skills", err.Error())
		return
	}
	categoryBySkill := make(map[uint]string, len(index))
	for id, s := range index {
		categoryBySkill[id] = s.CategorySlug
	}

	responses.SendSuccess(c, http.StatusOK, "Category averages computed successfully",
		CategoryAverages(rows, categoryBySkill))
}

// GetPendingAssessments godoc
// @Summary Get pending assessments of the caller's team
// @Description Leader-only queue of pending submissions from the leader's own reports, newest first
// @Tags Assessments
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]PendingAssessmentResponse}
// @Failure 403 {object} responses.ErrorResponse "Caller is not a leader"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /assessments/pending [get]
// @Security BearerAuth
func (ac *AssessmentController) GetPendingAssessments(c *gin.Context) {
	caller := ac.resolveCaller(c)
	if caller == nil {
		return
	}
	if !canModerate(caller) {
		responses.Forbidden(c, "Only leaders can review pending assessments")
		return
	}

	members, err := ac.repo.GetTeamMembers(caller.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch team members", err.Error())
		return
	}
	memberIDs := make([]uint, 0, len(members))
	memberByID := make(map[uint]user.User, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
		memberByID[m.ID] = m
	}

	rows, err := ac.repo.ListPendingByUsers(memberIDs)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch pending assessments", err.Error())
		return
	}

	index, err := ac.skillIndex()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch skills", err.Error())
		return
	}

	out := make([]PendingAssessmentResponse, 0, len(rows))
	for i := range rows {
		row := rows[i]
		item := PendingAssessmentResponse{
			ID:            row.ID,
			Level:         row.Level,
			NumericLevel:  row.NumericLevel,
			Justification: row.Justification,
			Evidence:      row.Evidence,
			CreatedAt:     row.CreatedAt,
			Status:        StatusPending,
			UserID:        row.UserID,
			SkillID:       row.SkillID,
		}
		if m, ok := memberByID[row.UserID]; ok {
			item.MemberName = m.FullName()
			item.MemberRole = m.Role
			item.MemberAvatar = m.AvatarURL
		}
		if s, ok := index[row.SkillID]; ok {
			item.SkillName = s.Name
			item.Category = s.CategorySlug
		}
		out = append(out, item)
	}
	responses.SendSuccess(c, http.StatusOK, "Pending assessments retrieved successfully", out)
}

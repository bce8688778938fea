package team

import (
	"net/http"
	"strconv"

	"github.com/uxchapter/skillboard/config"
	"github.com/uxchapter/skillboard/internal/assessment"
	"github.com/uxchapter/skillboard/internal/middleware"
	"github.com/uxchapter/skillboard/internal/skill"
	"github.com/uxchapter/skillboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TeamController serves the leader-facing rollups: team stats, member
// progress, and per-member strengths/opportunities.
type TeamController struct {
	repo   TeamRepository
	skills skill.SkillRepository
	config *config.Config
}

// NewTeamController creates a new TeamController.
func NewTeamController(repo TeamRepository, skills skill.SkillRepository, cfg *config.Config) *TeamController {
	return &TeamController{
		repo:   repo,
		skills: skills,
		config: cfg,
	}
}

// --- DTOs ---

type TeamStatsResponse struct {
	TotalMembers     int `json:"total_members"`
	PendingApprovals int `json:"pending_approvals"`
	AverageProgress  int `json:"average_progress"`
	ApprovedSkills   int `json:"approved_skills"`
}

type TeamMemberResponse struct {
	ID              uint   `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Squad           string `json:"squad"`
	AvatarURL       string `json:"avatar_url"`
	Progress        int    `json:"progress"`
	PendingSkills   int    `json:"pending_skills"`
	CompletedSkills int    `json:"completed_skills"`
}

type MemberAssessmentResponse struct {
	ID        uint   `json:"id"`
	SkillName string `json:"skill_name"`
	Category  string `json:"category"`
	Level     string `json:"level"`
	Progress  int    `json:"progress"`
	Status    string `json:"status"`
}

type MemberHighlightsResponse struct {
	Strengths     []assessment.RatedSkill `json:"strengths"`
	Opportunities []assessment.RatedSkill `json:"opportunities"`
}

// resolveMember loads the :id member and verifies they report to the
// calling leader; team visibility is scoped by the reporting relationship.
func (tc *TeamController) resolveMember(c *gin.Context) *TeamMemberTarget {
	leaderID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return nil
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid member id")
		return nil
	}

	member, err := tc.repo.GetMemberByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load member", err.Error())
		return nil
	}
	if member == nil || member.LeaderID == nil || *member.LeaderID != leaderID {
		responses.NotFound(c, "Team member")
		return nil
	}
	return &TeamMemberTarget{LeaderID: leaderID, MemberID: member.ID}
}

type TeamMemberTarget struct {
	LeaderID uint
	MemberID uint
}

// GetTeamStats godoc
// @Summary Get the leader's team dashboard stats
// @Description Member count, pending approvals, mean progress percentage and approved-skill count across the team
// @Tags Team
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=TeamStatsResponse}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /team/stats [get]
// @Security BearerAuth
func (tc *TeamController) GetTeamStats(c *gin.Context) {
	leaderID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	members, err := tc.repo.GetMembers(leaderID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch team members", err.Error())
		return
	}

	stats := TeamStatsResponse{TotalMembers: len(members)}
	if len(members) == 0 {
		responses.SendSuccess(c, http.StatusOK, "Team stats computed successfully", stats)
		return
	}

	memberIDs := make([]uint, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	rows, err := tc.repo.GetAssessmentsByUsers(memberIDs)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch team assessments", err.Error())
		return
	}

	for i := range rows {
		switch rows[i].Status {
		case assessment.StatusPending:
			stats.PendingApprovals++
		case assessment.StatusApproved:
			stats.ApprovedSkills++
		}
	}
	stats.AverageProgress = assessment.ProgressAverage(rows)

	responses.SendSuccess(c, http.StatusOK, "Team stats computed successfully", stats)
}

// GetTeamMembers godoc
// @Summary Get the leader's team members with per-member stats
// @Tags Team
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]TeamMemberResponse}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /team/members [get]
// @Security BearerAuth
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	leaderID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	members, err := tc.repo.GetMembers(leaderID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch team members", err.Error())
		return
	}

	memberIDs := make([]uint, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}
	rows, err := tc.repo.GetAssessmentsByUsers(memberIDs)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch team assessments", err.Error())
		return
	}

	byMember := make(map[uint][]assessment.SkillAssessment, len(members))
	for i := range rows {
		byMember[rows[i].UserID] = append(byMember[rows[i].UserID], rows[i])
	}

	out := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		memberRows := byMember[m.ID]
		item := TeamMemberResponse{
			ID:        m.ID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
			Role:      m.Role,
			Squad:     m.Squad,
			AvatarURL: m.AvatarURL,
			Progress:  assessment.ProgressAverage(memberRows),
		}
		for i := range memberRows {
			switch memberRows[i].Status {
			case assessment.StatusPending:
				item.PendingSkills++
			case assessment.StatusApproved:
				item.CompletedSkills++
			}
		}
		out = append(out, item)
	}
	responses.SendSuccess(c, http.StatusOK, "Team members retrieved successfully", out)
}

// GetMemberAssessments godoc
// @Summary Get one team member's assessments
// @Tags Team
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} responses.SuccessResponse{data=[]MemberAssessmentResponse}
// @Failure 404 {object} responses.ErrorResponse "Member not found or not in caller's team"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /team/members/{id}/assessments [get]
// @Security BearerAuth
func (tc *TeamController) GetMemberAssessments(c *gin.Context) {
	target := tc.resolveMember(c)
	if target == nil {
		return
	}

	rows, err := tc.repo.GetAssessmentsByUser(target.MemberID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch member assessments", err.Error())
		return
	}

	index, err := tc.skillIndex()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch skills", err.Error())
		return
	}

	out := make([]MemberAssessmentResponse, 0, len(rows))
	for i := range rows {
		row := rows[i]
		item := MemberAssessmentResponse{
			ID:       row.ID,
			Level:    row.Level,
			Progress: assessment.Progress(row.NumericLevel, row.Level),
			Status:   row.Status,
		}
		if s, ok := index[row.SkillID]; ok {
			item.SkillName = s.Name
			item.Category = s.CategorySlug
		}
		out = append(out, item)
	}
	responses.SendSuccess(c, http.StatusOK, "Member assessments retrieved successfully", out)
}

// GetMemberHighlights godoc
// @Summary Get a member's strengths and opportunities
// @Description Top three and bottom three skills by level across the member's approved and pending assessments
// @Tags Team
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} responses.SuccessResponse{data=MemberHighlightsResponse}
// @Failure 404 {object} responses.ErrorResponse "Member not found or not in caller's team"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /team/members/{id}/highlights [get]
// @Security BearerAuth
func (tc *TeamController) GetMemberHighlights(c *gin.Context) {
	target := tc.resolveMember(c)
	if target == nil {
		return
	}

	rows, err := tc.repo.GetAssessmentsByUser(target.MemberID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch member assessments", err.Error())
		return
	}

	index, err := tc.skillIndex()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch skills", err.Error())
		return
	}

	rated := make([]assessment.RatedSkill, 0, len(rows))
	for i := range rows {
		row := rows[i]
		if row.Status == assessment.StatusRejected {
			continue
		}
		lvl, ok := assessment.CurrentLevel(row.NumericLevel, row.Level)
		if !ok {
			continue
		}
		item := assessment.RatedSkill{
			ID:           row.ID,
			NumericLevel: lvl,
			Status:       row.Status,
		}
		if s, ok := index[row.SkillID]; ok {
			item.Name = s.Name
			item.Category = s.CategorySlug
		}
		rated = append(rated, item)
	}

	strengths, opportunities := assessment.RankHighlights(rated)
	responses.SendSuccess(c, http.StatusOK, "Member highlights computed successfully", MemberHighlightsResponse{
		Strengths:     strengths,
		Opportunities: opportunities,
	})
}

func (tc *TeamController) skillIndex() (map[uint]skill.Skill, error) {
	skills, err := tc.skills.GetAllSkills()
	if err != nil {
		return nil, err
	}
	index := make(map[uint]skill.Skill, len(skills))
	for _, s := range skills {
		index[s.ID] = s
	}
	return index, nil
}

package assessment

import (
	"errors"
	"strings"
	"time"

	"github.com/uxchapter/skillboard/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository interface {
	// Upsert writes a submission keyed on (user_id, skill_id). A conflict
	// overwrites the prior record, resetting it to pending and clearing any
	// approval/rejection metadata.
	Upsert(a *SkillAssessment) error
	GetByID(id uint) (*SkillAssessment, error)

	// Approve and Reject perform the guarded pending->X transition in one
	// conditional statement. They return whether a row actually changed;
	// zero rows affected (lost race, already transitioned) is not an error.
	Approve(id, approverID uint, at time.Time) (bool, error)
	Reject(id, approverID uint, reason string, at time.Time) (bool, error)

	ListByUser(userID uint) ([]SkillAssessment, error)
	ListApprovedByUser(userID uint) ([]SkillAssessment, error)
	ListByUsers(userIDs []uint) ([]SkillAssessment, error)
	ListPendingByUsers(userIDs []uint) ([]SkillAssessment, error)

	// GetTeamMembers lists the designers reporting to a leader. Leadership
	// scoping happens here, at the visibility level.
	GetTeamMembers(leaderID uint) ([]user.User, error)
	GetUserByID(id uint) (*user.User, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new instance of AssessmentRepository.
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// upsertColumns are overwritten on conflict; approval/rejection metadata is
// listed so a resubmission clears it and re-opens the workflow.
var upsertColumns = []string{
	"numeric_level", "level", "justification", "evidence", "status",
	"approved_at", "approved_by", "rejected_at", "rejected_by", "rejection_reason",
	"updated_at",
}

func (r *assessmentRepository) Upsert(a *SkillAssessment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(a).Error
}

func (r *assessmentRepository) GetByID(id uint) (*SkillAssessment, error) {
	var a SkillAssessment
	err := r.db.First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepository) Approve(id, approverID uint, at time.Time) (bool, error) {
	res := r.db.Model(&SkillAssessment{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]interface{}{
			"status":      StatusApproved,
			"approved_at": at,
			"approved_by": approverID,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *assessmentRepository) Reject(id, approverID uint, reason string, at time.Time) (bool, error) {
	res := r.db.Model(&SkillAssessment{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]interface{}{
			"status":           StatusRejected,
			"rejected_at":      at,
			"rejected_by":      approverID,
			"rejection_reason": strings.TrimSpace(reason),
		})
	return res.RowsAffected > 0, res.Error
}

func (r *assessmentRepository) ListByUser(userID uint) ([]SkillAssessment, error) {
	var rows []SkillAssessment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *assessmentRepository) ListApprovedByUser(userID uint) ([]SkillAssessment, error) {
	var rows []SkillAssessment
	err := r.db.Where("user_id = ? AND status = ?", userID, StatusApproved).Find(&rows).Error
	return rows, err
}

func (r *assessmentRepository) ListByUsers(userIDs []uint) ([]SkillAssessment, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []SkillAssessment
	err := r.db.Where("user_id IN ?", userIDs).Find(&rows).Error
	return rows, err
}

func (r *assessmentRepository) ListPendingByUsers(userIDs []uint) ([]SkillAssessment, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []SkillAssessment
	err := r.db.Where("status = ? AND user_id IN ?", StatusPending, userIDs).
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *assessmentRepository) GetTeamMembers(leaderID uint) ([]user.User, error) {
	var members []user.User
	err := r.db.Where("leader_id = ? AND role = ?", leaderID, user.RoleDesigner).
		Order("first_name ASC").Find(&members).Error
	return members, err
}

func (r *assessmentRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

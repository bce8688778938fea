package team

import (
	"errors"

	"github.com/uxchapter/skillboard/internal/assessment"
	"github.com/uxchapter/skillboard/internal/user"
	"gorm.io/gorm"
)

type TeamRepository interface {
	// GetMembers lists the designers reporting to a leader, ordered by name.
	GetMembers(leaderID uint) ([]user.User, error)
	GetMemberByID(id uint) (*user.User, error)

	GetAssessmentsByUsers(userIDs []uint) ([]assessment.SkillAssessment, error)
	GetAssessmentsByUser(userID uint) ([]assessment.SkillAssessment, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) GetMembers(leaderID uint) ([]user.User, error) {
	var members []user.User
	err := r.db.Where("leader_id = ? AND role = ?", leaderID, user.RoleDesigner).
		Order("first_name ASC").Find(&members).Error
	return members, err
}

func (r *teamRepository) GetMemberByID(id uint) (*user.User, error) {
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

func (r *teamRepository) GetAssessmentsByUsers(userIDs []uint) ([]assessment.SkillAssessment, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []assessment.SkillAssessment
	err := r.db.Where("user_id IN ?", userIDs).Find(&rows).Error
	return rows, err
}

func (r *teamRepository) GetAssessmentsByUser(userID uint) ([]assessment.SkillAssessment, error) {
	var rows []assessment.SkillAssessment
	err := r.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

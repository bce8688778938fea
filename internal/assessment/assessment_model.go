package assessment

import (
	"time"

	"gorm.io/gorm"
)

// Workflow states of a SkillAssessment. The only legal transitions are
// pending -> approved and pending -> rejected; a resubmission re-opens the
// record back to pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Legacy three-bucket textual levels, derived from the numeric 0-5 level
// and kept alongside it for backward compatibility.
const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// JustificationPlaceholder is stored when a submission carries no
// justification text; the column is never left empty.
const JustificationPlaceholder = "Sin comentario"

// SkillAssessment is one user's self-rating of one skill. Exactly one row
// exists per (user_id, skill_id); submissions upsert on that pair.
type SkillAssessment struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"uniqueIndex:idx_assessments_user_skill;not null"`
	SkillID         uint       `json:"skill_id" gorm:"uniqueIndex:idx_assessments_user_skill;not null"`
	NumericLevel    *int       `json:"numeric_level"`
	Level           string     `json:"level"` // legacy text mirror of NumericLevel
	Justification   string     `json:"justification"`
	Evidence        string     `json:"evidence"`
	Status          string     `json:"status" gorm:"default:'pending';index"`
	ApprovedAt      *time.Time `json:"approved_at"`
	ApprovedBy      *uint      `json:"approved_by"`
	RejectedAt      *time.Time `json:"rejected_at"`
	RejectedBy      *uint      `json:"rejected_by"`
	RejectionReason string     `json:"rejection_reason"`
}

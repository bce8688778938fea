package user

import (
	"time"

	"gorm.io/gorm"
)

// Roles a profile can hold. Role is a flat column: every user has exactly
// one role, and designers point at their leader through LeaderID.
const (
	RoleDesigner    = "designer"
	RoleLeader      = "leader"
	RoleHeadChapter = "head_chapter"
	RoleAdmin       = "admin"
)

type User struct {
	gorm.Model
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	Role      string `gorm:"default:'designer';index" json:"role"`
	LeaderID  *uint  `gorm:"index" json:"leader_id"`
	Squad     string `json:"squad"`
	AvatarURL string `json:"avatar_url"`
}

// RefreshToken persists issued refresh tokens so they can be rotated and
// revoked server-side.
type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

// FullName joins first and last name, trimming when either is empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

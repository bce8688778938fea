package auth

import (
	"time"

	"github.com/uxchapter/skillboard/internal/user"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100" example:"Ana"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Pérez"`
	Email     string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password  string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Role      string `json:"role" binding:"omitempty,oneof=designer leader head_chapter admin" example:"designer"`
	LeaderID  *uint  `json:"leader_id" binding:"omitempty"`
	Squad     string `json:"squad" binding:"omitempty,max=100" example:"Checkout"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type LogoutRequest struct {
	RefreshToken          string `json:"refresh_token"`           // Optional: specific token to invalidate
	InvalidateAllSessions bool   `json:"invalidate_all_sessions"` // If true, invalidate all user's sessions
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	LeaderID  *uint     `json:"leader_id"`
	Squad     string    `json:"squad"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FilterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		LeaderID:  u.LeaderID,
		Squad:     u.Squad,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "elevencentral_backend/internals/features/users/user/model"
)

/* =========================
   REQUEST
   ========================= */

type RegisterRequest struct {
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

func (r *RegisterRequest) Normalize() {
	r.UserFullName = strings.TrimSpace(r.UserFullName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

/* =========================
   RESPONSE
   ========================= */

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
	UserEmail    string    `json:"user_email"`
	UserRole     string    `json:"user_role"`
	UserIsActive bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserFullName:  m.UserFullName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

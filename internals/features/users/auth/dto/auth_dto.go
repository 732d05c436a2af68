package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	authModel "mudarris_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=100"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	// Identifier accepts user_name or email.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *authModel.UserModel) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

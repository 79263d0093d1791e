package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterClientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,min=3,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Address     string `json:"address" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyTwoFARequest struct {
	ChallengeID string `json:"challenge_id" validate:"required,uuid"`
	Code        string `json:"code" validate:"required,len=6"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

// TwoFAChallengeResponse is the first-step login answer. The code is echoed
// back to the caller: the original flow shows the generated code to the user
// instead of delivering it out of band.
type TwoFAChallengeResponse struct {
	ChallengeID string `json:"challenge_id"`
	Code        string `json:"code"`
	ExpiresIn   int64  `json:"expires_in"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package dto

import (
	"time"

	"github.com/parley-chat/parley/internal/domain/user"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Gender          string `json:"gender" binding:"required,oneof=male female other"`
	Password        string `json:"password" binding:"required,max=72"`
	ConfirmPassword string `json:"confirm_password" binding:"required,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user. The password hash is never exposed.
type UserResponse struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Gender         string    `json:"gender"`
	IsActive       bool      `json:"is_active"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:        u.ID(),
		Username:  u.Username().String(),
		Email:     u.Email().String(),
		Gender:    u.Gender().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
	if img := u.ProfileImage(); !img.IsZero() {
		url := img.URL
		resp.ProfilePicture = &url
	}
	return resp
}

func ToUserResponses(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

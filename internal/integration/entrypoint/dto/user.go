// Package dto defines request and response payloads for the HTTP API.
package dto

import (
	"github.com/sft-api/backend/internal/application/usecase/user"
)

// UserResponse represents the authenticated user's profile.
type UserResponse struct {
	ID              string  `json:"id"`
	Email           string  `json:"email,omitempty"`
	LastRepeatCheck *string `json:"last_repeat_check"`
	CreatedAt       string  `json:"created_at"`
}

// ToUserResponse converts a user output to its response DTO.
func ToUserResponse(out *user.GetCurrentUserOutput) UserResponse {
	resp := UserResponse{
		ID:        out.UserID.String(),
		Email:     out.Email,
		CreatedAt: formatTime(out.CreatedAt),
	}
	if out.LastRepeatCheck != nil {
		d := formatDay(*out.LastRepeatCheck)
		resp.LastRepeatCheck = &d
	}
	return resp
}

package dto

import (
	"time"

	"github.com/openboard/issue-service/internal/domain"
)

// UserResponse is the public user representation.
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewUserResponses maps a listing.
func NewUserResponses(users []domain.User) []UserResponse {
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			Active:    u.Active,
			CreatedAt: u.CreatedAt,
		})
	}
	return items
}

package response

import (
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

type LoginResponse struct {
	User *UserResponse `json:"user"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:       view.ID,
		Username: view.Username,
		FullName: view.FullName,
		Email:    view.Email,
		Role:     view.Role,
	}
}

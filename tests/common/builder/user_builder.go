//go:build unit

package builder

import (
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Username string
	FullName string
	Email    string
	Role     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Username: "provider",
		FullName: "Pat Provider",
		Email:    "provider@example.com",
		Role:     "provider",
	}
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

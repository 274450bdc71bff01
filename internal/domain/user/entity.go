package user

import "github.com/google/uuid"

// User is an account from the static credential directory. There is no user
// persistence in this system; accounts are fixed at startup.
type User struct {
	id       uuid.UUID
	username string
	fullName string
	email    string
	role     Role
}

func NewUser(id uuid.UUID, username, fullName, email string, role Role) (*User, error) {
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:       id,
		username: username,
		fullName: fullName,
		email:    email,
		role:     role,
	}, nil
}

func (u *User) ID() uuid.UUID    { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) FullName() string { return u.fullName }
func (u *User) Email() string    { return u.email }
func (u *User) Role() Role       { return u.role }

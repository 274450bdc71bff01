package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("username must not be empty")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credentials{}, ErrInvalidUsername
	}
	if len(password) < 8 {
		return Credentials{}, ErrPasswordTooWeak
	}
	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}

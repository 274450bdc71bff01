//go:build unit

package builder

import (
	reqdto "slotbook/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "provider",
		Password: "provider123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

package commands

import (
	"context"

	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/pkg/password"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByUsername(ctx, credentials.Username())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad password so usernames cannot be probed.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(hash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.generatePair(view.ID, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{UserID: view.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if _, err := a.readStore.FindByID(ctx, claims.UserID); err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.generatePair(claims.UserID, role)
}

func (a *authCommandsImpl) generatePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

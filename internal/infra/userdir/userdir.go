// Package userdir is the static credential directory: a fixed list of two demo
// accounts (one provider, one client). It stands in for a real identity
// system, which is explicitly out of scope; passwords come from configuration
// and are bcrypt-hashed at startup so nothing plaintext is kept around.
package userdir

import (
	"context"
	"log/slog"
	"strings"

	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/password"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Fixed ids keep issued tokens valid across restarts.
var (
	providerID = uuid.MustParse("c7b3f1e2-0a4d-4f3a-9b2e-5d8c1a6f4e21")
	clientID   = uuid.MustParse("2f9e4d6c-8b1a-4c5e-a3d7-6e0f9b8c2d43")
)

type account struct {
	view         queries.UserView
	passwordHash string
}

type Directory struct {
	byID       map[uuid.UUID]*account
	byUsername map[string]*account
	logger     *slog.Logger
}

func NewDirectory(cfg config.Config, logger *slog.Logger) (*Directory, error) {
	seeds := []struct {
		id       uuid.UUID
		username string
		pass     string
		fullName string
		email    string
		role     user.Role
	}{
		{providerID, cfg.Seed.ProviderUsername, cfg.Seed.ProviderPassword, cfg.Seed.ProviderName, cfg.Seed.ProviderEmail, user.RoleProvider},
		{clientID, cfg.Seed.ClientUsername, cfg.Seed.ClientPassword, cfg.Seed.ClientName, cfg.Seed.ClientEmail, user.RoleClient},
	}

	d := &Directory{
		byID:       make(map[uuid.UUID]*account, len(seeds)),
		byUsername: make(map[string]*account, len(seeds)),
		logger:     logger,
	}
	for _, s := range seeds {
		u, err := user.NewUser(s.id, s.username, s.fullName, s.email, s.role)
		if err != nil {
			return nil, errs.Wrap(err, "invalid seed account "+s.username)
		}
		hash, err := password.HashPassword(s.pass)
		if err != nil {
			return nil, err
		}
		acc := &account{
			view: queries.UserView{
				ID:       u.ID(),
				Username: u.Username(),
				FullName: u.FullName(),
				Email:    u.Email(),
				Role:     u.Role().String(),
			},
			passwordHash: hash,
		}
		d.byID[u.ID()] = acc
		d.byUsername[strings.ToLower(u.Username())] = acc
	}
	return d, nil
}

func (d *Directory) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	acc, ok := d.byID[id]
	if !ok {
		return nil, infra.WrapStoreErr(d.logger, infra.KindNotFound, "user not found in directory", nil)
	}
	view := acc.view
	return &view, nil
}

func (d *Directory) FindByUsername(_ context.Context, username string) (*queries.UserView, string, error) {
	acc, ok := d.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, "", infra.WrapStoreErr(d.logger, infra.KindNotFound, "user not found in directory", nil)
	}
	view := acc.view
	return &view, acc.passwordHash, nil
}

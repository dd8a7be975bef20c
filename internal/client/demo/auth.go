package demo

import (
	"context"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/auth"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/session"
	"github.com/dmitrijs2005/posclient/internal/logging"
)

// AuthRepository logs in a mock user whenever the real login or
// registration fails.
type AuthRepository struct {
	auth.Repository
	sessions session.Store
	log      logging.Logger
}

func NewAuthRepository(inner auth.Repository, sessions session.Store, log logging.Logger) *AuthRepository {
	return &AuthRepository{Repository: inner, sessions: sessions, log: log.With("demo", "auth")}
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := r.Repository.Login(ctx, email, password)
	if err == nil {
		return u, nil
	}

	r.log.Warn(ctx, "login failed, using mock user", "email", email, "error", err)
	return r.mock(ctx, &models.User{ID: MockUserID, Name: MockUserName, Email: email, Token: MockLoginToken}, err)
}

func (r *AuthRepository) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	u, err := r.Repository.Register(ctx, reg)
	if err == nil {
		return u, nil
	}

	r.log.Warn(ctx, "registration failed, using mock user", "email", reg.Email, "error", err)
	return r.mock(ctx, &models.User{ID: MockUserID, Name: reg.Name, Email: reg.Email, Token: MockRegisterToken}, err)
}

// mock persists u as the current session. If that fails too, the original
// error is returned.
func (r *AuthRepository) mock(ctx context.Context, u *models.User, orig error) (*models.User, error) {
	if err := r.sessions.Save(ctx, u); err != nil {
		r.log.Error(ctx, "saving mock session failed", "error", err)
		return nil, orig
	}
	return u, nil
}

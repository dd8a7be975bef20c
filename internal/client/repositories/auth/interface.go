// Package auth talks to the client account endpoints of the POS backend and
// keeps the logged-in user in the local session store.
package auth

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/posclient/internal/client/models"
)

// User-facing failures. The transport or storage cause stays reachable
// with errors.Is/As.
var (
	ErrLoginFailed    = errors.New("Error al iniciar sesión. Verifique sus credenciales.")
	ErrRegisterFailed = errors.New("Error al registrar el usuario. Intente con otro correo.")
	ErrLogoutFailed   = errors.New("Error al cerrar sesión.")
)

type Repository interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	// Register creates the account and then logs in with the same
	// credentials.
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	// Logout forgets the current session. Calling it without a session is
	// not an error.
	Logout(ctx context.Context) error
	// CurrentUser returns the persisted user, or nil when there is none or
	// the stored record is unreadable.
	CurrentUser(ctx context.Context) *models.User
	IsAuthenticated(ctx context.Context) bool
}

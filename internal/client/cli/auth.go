package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/services"
	"github.com/dmitrijs2005/posclient/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Failures are reported
// to the user; only input errors are returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Correo electrónico", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, passwordPrompt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if msg := validateLogin(email, password); msg != "" {
		a.notify(msg)
		return nil
	}

	u, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.notify(err.Error())
		return nil
	}

	a.catalog = nil
	a.printf("Bienvenido, %s\n", u.Name)
	return nil
}

// Register collects the sign-up form, creates the account and logs in.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	var err error

	if reg.Name, err = getSimpleText(a.reader, "Nombre", a.out); err != nil {
		return err
	}
	if reg.Address, err = getSimpleText(a.reader, "Dirección", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Correo electrónico", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out, passwordPrompt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, confirmPrompt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	reg.Password = string(password)
	if msg := validateRegistration(reg, string(confirm)); msg != "" {
		a.notify(msg)
		return nil
	}

	u, err := a.auth.Register(ctx, reg)
	if err != nil {
		a.notify(err.Error())
		return nil
	}

	a.catalog = nil
	a.printf("Cuenta creada. Bienvenido, %s\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.notify(err.Error())
		return nil
	}
	a.catalog = nil
	a.printf("Sesión cerrada\n")
	return nil
}

// WhoAmI shows the current user and, for JWT tokens, when the token expires.
func (a *App) WhoAmI(_ context.Context) error {
	u := a.auth.User()
	if u == nil {
		a.printf("Sin sesión\n")
		return nil
	}

	a.printf("%s <%s> (cliente #%d)\n", u.Name, u.Email, u.ID)
	if exp, ok := services.TokenExpiry(u.Token); ok {
		state := "válido"
		if time.Now().After(exp) {
			state = "vencido"
		}
		a.printf("Token %s hasta %s\n", state, exp.Local().Format(time.DateTime))
	}
	return nil
}

package cli

import (
	"net/mail"
	"unicode/utf8"

	"github.com/dmitrijs2005/posclient/internal/client/models"
)

// Form checks run before anything is sent. They return the message to show,
// or "" when the input is acceptable.

func validateLogin(email string, password []byte) string {
	switch {
	case email == "":
		return "El correo electrónico es requerido"
	case !validEmail(email):
		return "Correo electrónico inválido"
	case len(password) == 0:
		return "La contraseña es requerida"
	case utf8.RuneCount(password) < 6:
		return "La contraseña debe tener al menos 6 caracteres"
	}
	return ""
}

func validateRegistration(reg models.Registration, confirm string) string {
	switch {
	case reg.Name == "":
		return "El nombre es requerido"
	case utf8.RuneCountInString(reg.Name) < 3:
		return "El nombre debe tener al menos 3 caracteres"
	case reg.Address == "":
		return "La dirección es requerida"
	case utf8.RuneCountInString(reg.Address) < 6:
		return "La dirección debe tener al menos 6 caracteres"
	case reg.Email == "":
		return "El correo electrónico es requerido"
	case !validEmail(reg.Email):
		return "Correo electrónico inválido"
	case reg.Password == "":
		return "La contraseña es requerida"
	case utf8.RuneCountInString(reg.Password) < 8:
		return "La contraseña debe tener al menos 8 caracteres"
	case confirm != reg.Password:
		return "Las contraseñas deben coincidir"
	}
	return ""
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

package models

// User is the authenticated client. The JSON shape matches both the login
// payload and the persisted session record.
type User struct {
	ID    int64  `json:"Id"`
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Token string `json:"token"`
}

// Registration carries the sign-up form.
type Registration struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// Package common contains constants shared by the POS client and the
// development backend, so both sides agree on the wire details.
package common

const (
	// RequestIDHeaderName carries a per-request UUID for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// AuthorizationHeaderName carries "Bearer <token>" once a user is logged in.
	AuthorizationHeaderName = "Authorization"

	// OrderMessagePrefix precedes the JSON order in every entry of the
	// per-client order history.
	OrderMessagePrefix = "Orden recibida: "
)

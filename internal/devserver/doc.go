// Package devserver is a local, in-memory stand-in for the POS backend. It
// serves the same endpoints and JSON shapes the client consumes, so the
// terminal client can be exercised end to end without the real API.
package devserver

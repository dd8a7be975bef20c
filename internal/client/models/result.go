package models

import "encoding/json"

// Result is the outcome of a use case: either a payload or a human-readable
// failure message, never both. The zero value is a failure with an empty
// message; build results with Success or Failure.
type Result[T any] struct {
	data T
	msg  string
	ok   bool
}

func Success[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true}
}

func Failure[T any](msg string) Result[T] {
	return Result[T]{msg: msg}
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool { return r.ok }

// Data returns the payload. It is the zero value for failures.
func (r Result[T]) Data() T { return r.data }

// Message returns the failure message. It is empty for successes.
func (r Result[T]) Message() string { return r.msg }

// MarshalJSON encodes {"success":true,"data":...} or {"success":false,"error":"..."}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(struct {
			Success bool `json:"success"`
			Data    T    `json:"data"`
		}{true, r.data})
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{false, r.msg})
}

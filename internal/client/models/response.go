package models

import "encoding/json"

// APIResponse is the generic body returned by the backend. Each endpoint
// fills a different subset of the fields.
type APIResponse struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    string          `json:"error,omitempty"`
	Message  string          `json:"message,omitempty"`
	Messages []string        `json:"messages,omitempty"`
}

package client

import (
	"context"
	"net/url"
)

// Client is the transport contract the repositories depend on. Each call
// performs exactly one HTTP request and decodes the JSON body into out
// (out may be nil).
type Client interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, out any) error
	Ping(ctx context.Context) error
}

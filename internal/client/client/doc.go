// Package client contains the client-side building blocks shared by every
// repository.
//
// # Overview
//
//  1. A transport contract (Client) with Get/Post/Put/Delete and Ping.
//  2. APIClient, its HTTP implementation: JSON bodies, a request ID and an
//     optional bearer token on every call, an optional rate limit, and a
//     single attempt per call (no retries).
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file that holds the current session.
//
// # Error Handling
//
// Failures are classified so that callers can tell them apart:
//
//   - *StatusError for a received non-2xx response, with a fixed message
//     per status (see newStatusError);
//   - ErrNoResponse when the request went out but nothing came back;
//   - ErrRequestSetup when the request could not be built or sent;
//   - ErrUnexpectedResponse when a 2xx body could not be decoded.
//
// Error() is always the user-facing message; the underlying cause is kept
// and can be matched with errors.Is / errors.As.
package client

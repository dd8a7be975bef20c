// Package cli provides the interactive point-of-sale terminal client.
//
// It wires configuration, the local session store, the API repositories and
// use cases, and runs a REPL whose commands stand in for the screens of the
// shop: login and registration, the product catalog with purchases, the
// order history and the product form. A background watcher keeps the
// online/offline mode in the prompt current.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See NewApp and runREPL for details.
package cli

// Package demo lets the client be used without a working backend. Its
// repositories wrap the real ones and, when a call fails, answer with a
// fixed mock user, catalog or order history instead of the error.
//
// Demo mode is only switched on by explicit configuration.
package demo

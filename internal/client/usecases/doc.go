// Package usecases holds the operations the terminal client performs on
// behalf of the user. Each one validates its input, delegates a single
// repository call and reports the outcome as a models.Result, so callers
// never have to inspect errors for expected failures.
package usecases

// Package models defines the records exchanged with the POS backend and the
// result envelope returned by the use cases.
//
// Money values use decimal.Decimal and are encoded as plain JSON numbers,
// which is what the backend expects.
package models

import "github.com/shopspring/decimal"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

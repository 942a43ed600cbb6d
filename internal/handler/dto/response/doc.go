// Package response holds the JSON bodies the API returns. Decimal amounts are
// rendered as JSON numbers.
package response

import "github.com/shopspring/decimal"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

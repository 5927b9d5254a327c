package ledger

import (
	"math"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DraftPayout previews the amount a percentage of current capital would pay
// out, in cents, rounded half away from zero.
//
// A draft is advisory and must never block the caller: a non-positive capital
// or a non-finite percent yields 0 rather than an error. Committing the draft
// is a separate action that records a reinvest or profit-withdrawal entry.
func DraftPayout(capitalNowCents int64, percent float64) int64 {
	if capitalNowCents <= 0 {
		return 0
	}
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0
	}

	amount := decimal.NewFromInt(capitalNowCents).
		Mul(decimal.NewFromFloat(percent)).
		Div(oneHundred).
		Round(0)
	return amount.IntPart()
}

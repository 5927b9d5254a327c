package ledger

import (
	"github.com/mkravtsov/investra-backend/pkg/db/models"
)

// Valuation holds the four derived aggregates for one investor. All values are
// integer cents.
type Valuation struct {
	CapitalNowCents         int64 `json:"capital_now_cents"`
	NetProfitNowCents       int64 `json:"net_profit_now_cents"`
	TotalProfitAllTimeCents int64 `json:"total_profit_all_time_cents"`
	WithdrawnTotalCents     int64 `json:"withdrawn_total_cents"`
}

// Valuate folds an investor's entries into the derived aggregates.
//
// It is a full recompute over the immutable log on every call; nothing is
// cached or incrementally maintained, so the result is reproducible from the
// snapshot alone. All four aggregates come out of the same single pass driven
// by the EntryKind effect table, so they cannot disagree with each other.
// Entries belonging to a different investor are ignored.
//
// Net profit is clamped at zero: when withdrawals push capital below the base
// contribution the shortfall shows up as reduced capital, never as negative
// profit. That is business policy, not an accident.
func Valuate(investor models.Investor, entries []models.LedgerEntry) Valuation {
	capital := investor.InvestedAmountCents
	var withdrawn, profitAllTime int64

	for _, entry := range entries {
		if entry.InvestorID != investor.ID {
			continue
		}
		kind := Classify(entry)
		capital += kind.CapitalSign() * entry.AmountCents
		if kind.IsWithdrawal() {
			withdrawn += entry.AmountCents
		}
		if kind.CountsAsProfit() && entry.AmountCents > 0 {
			profitAllTime += entry.AmountCents
		}
	}

	netProfit := capital - investor.InvestedAmountCents
	if netProfit < 0 {
		netProfit = 0
	}

	return Valuation{
		CapitalNowCents:         capital,
		NetProfitNowCents:       netProfit,
		TotalProfitAllTimeCents: profitAllTime,
		WithdrawnTotalCents:     withdrawn,
	}
}

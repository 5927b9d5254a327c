// Package ledger holds the valuation engine: pure functions that classify
// ledger entries and fold them into an investor's derived balances. The package
// performs no I/O; callers hand it an already-materialized snapshot.
package ledger

import (
	"github.com/mkravtsov/investra-backend/pkg/db/models"
	pkgerrors "github.com/mkravtsov/investra-backend/pkg/errors"
)

// ValidateEntry checks the structural invariants of a ledger entry: the stored
// amount is an unsigned magnitude, the period is a well-formed calendar month,
// and at most one classification flag is set. It does not check that the
// investor exists; that requires storage and belongs to the service layer.
func ValidateEntry(entry models.LedgerEntry) error {
	if entry.AmountCents < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "entry amount must be a non-negative magnitude").
			WithDetails(map[string]any{"amount_cents": entry.AmountCents})
	}
	if entry.PeriodMonth.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "entry period is required")
	}
	if err := validateFlags(entry); err != nil {
		return err
	}
	return nil
}

// validateFlags enforces the exclusivity rules: topup and the two withdrawal
// flags are mutually exclusive, and reinvest may not combine with any of them.
func validateFlags(entry models.LedgerEntry) error {
	set := 0
	for _, flag := range []bool{entry.IsTopup, entry.IsWithdrawalCapital, entry.IsWithdrawalProfit} {
		if flag {
			set++
		}
	}
	if set > 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "topup and withdrawal flags are mutually exclusive")
	}
	if entry.Reinvest && set > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "reinvest may not combine with topup or withdrawal flags")
	}
	return nil
}

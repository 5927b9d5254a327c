package ledger

import (
	"testing"

	"github.com/mkravtsov/investra-backend/pkg/db/models"
	pkgerrors "github.com/mkravtsov/investra-backend/pkg/errors"
)

func TestValidateEntryAcceptsEachSingleFlag(t *testing.T) {
	period := mustPeriod(t, "2024-01")

	tests := []struct {
		name  string
		entry models.LedgerEntry
	}{
		{name: "plain operation", entry: models.LedgerEntry{PeriodMonth: period, AmountCents: 100}},
		{name: "topup", entry: models.LedgerEntry{PeriodMonth: period, AmountCents: 100, IsTopup: true}},
		{name: "reinvest", entry: models.LedgerEntry{PeriodMonth: period, AmountCents: 100, Reinvest: true}},
		{name: "withdraw capital", entry: models.LedgerEntry{PeriodMonth: period, AmountCents: 100, IsWithdrawalCapital: true}},
		{name: "withdraw profit", entry: models.LedgerEntry{PeriodMonth: period, AmountCents: 100, IsWithdrawalProfit: true}},
		{name: "zero amount", entry: models.LedgerEntry{PeriodMonth: period}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateEntry(tc.entry); err != nil {
				t.Fatalf("expected valid entry, got %v", err)
			}
		})
	}
}

func TestValidateEntryRejectsMalformedEntries(t *testing.T) {
	period := mustPeriod(t, "2024-01")

	tests := []struct {
		name  string
		entry models.LedgerEntry
	}{
		{name: "negative amount", entry: models.LedgerEntry{PeriodMonth: period, AmountCents: -1}},
		{name: "missing period", entry: models.LedgerEntry{AmountCents: 100}},
		{name: "topup plus capital withdrawal", entry: models.LedgerEntry{PeriodMonth: period, IsTopup: true, IsWithdrawalCapital: true}},
		{name: "topup plus profit withdrawal", entry: models.LedgerEntry{PeriodMonth: period, IsTopup: true, IsWithdrawalProfit: true}},
		{name: "both withdrawal flags", entry: models.LedgerEntry{PeriodMonth: period, IsWithdrawalCapital: true, IsWithdrawalProfit: true}},
		{name: "reinvest plus topup", entry: models.LedgerEntry{PeriodMonth: period, Reinvest: true, IsTopup: true}},
		{name: "reinvest plus withdrawal", entry: models.LedgerEntry{PeriodMonth: period, Reinvest: true, IsWithdrawalProfit: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEntry(tc.entry)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
				t.Fatalf("expected %s, got %v", pkgerrors.CodeValidation, err)
			}
		})
	}
}

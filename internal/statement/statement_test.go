package statement

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mkravtsov/investra-backend/pkg/db/models"
	dbtypes "github.com/mkravtsov/investra-backend/pkg/db/types"
	"github.com/mkravtsov/investra-backend/pkg/enums"
)

func period(t *testing.T, value string) dbtypes.Period {
	t.Helper()
	p, err := dbtypes.ParsePeriod(value)
	if err != nil {
		t.Fatalf("parse period %q: %v", value, err)
	}
	return p
}

func sampleSnapshot(t *testing.T) (models.Investor, []models.LedgerEntry) {
	t.Helper()
	investorID := uuid.New()
	investor := models.Investor{ID: investorID, FullName: "A. Ivanov", InvestedAmountCents: 1_000_000}
	entries := []models.LedgerEntry{
		{ID: 3, InvestorID: investorID, PeriodMonth: period(t, "2024-03"), AmountCents: 200_000, IsWithdrawalCapital: true},
		{ID: 1, InvestorID: investorID, PeriodMonth: period(t, "2024-01"), AmountCents: 100_000, Reinvest: true},
		{ID: 2, InvestorID: investorID, PeriodMonth: period(t, "2024-02"), AmountCents: 50_000, IsWithdrawalProfit: true},
		{ID: 4, InvestorID: investorID, PeriodMonth: period(t, "2024-03"), AmountCents: 30_000, IsTopup: true},
		{ID: 5, InvestorID: investorID, PeriodMonth: period(t, "2024-04"), AmountCents: 5_000},
	}
	return investor, entries
}

func TestBuildRowsFollowTimelineWithLabels(t *testing.T) {
	investor, entries := sampleSnapshot(t)

	st := Build(investor, entries)

	wantRows := []Row{
		{Period: "2024-01", EntryID: 1, Kind: enums.EntryKindReinvest, Label: "reinvestment", AmountCents: 100_000},
		{Period: "2024-02", EntryID: 2, Kind: enums.EntryKindWithdrawProfit, Label: "profit withdrawal", AmountCents: -50_000},
		{Period: "2024-03", EntryID: 3, Kind: enums.EntryKindWithdrawCapital, Label: "capital withdrawal", AmountCents: -200_000},
		{Period: "2024-03", EntryID: 4, Kind: enums.EntryKindTopup, Label: "capital top-up", AmountCents: 30_000},
		{Period: "2024-04", EntryID: 5, Kind: enums.EntryKindOperation, Label: "operation", AmountCents: 5_000},
	}
	if len(st.Rows) != len(wantRows) {
		t.Fatalf("expected %d rows, got %d", len(wantRows), len(st.Rows))
	}
	for i, want := range wantRows {
		if st.Rows[i] != want {
			t.Fatalf("row[%d] = %+v, want %+v", i, st.Rows[i], want)
		}
	}
}

func TestFilterRowsNarrowsHistoryOnly(t *testing.T) {
	investor, entries := sampleSnapshot(t)

	st := Build(investor, entries).FilterRows(enums.EntryKindWithdrawCapital)

	if len(st.Rows) != 1 {
		t.Fatalf("expected 1 capital withdrawal row, got %d", len(st.Rows))
	}
	if st.Rows[0].EntryID != 3 || st.Rows[0].AmountCents != -200_000 {
		t.Fatalf("unexpected row %+v", st.Rows[0])
	}
	// aggregates stay computed over the full ledger
	if st.Valuation.CapitalNowCents != 880_000 {
		t.Fatalf("filtering must not touch the valuation, got %d", st.Valuation.CapitalNowCents)
	}

	empty := Build(investor, nil).FilterRows(enums.EntryKindTopup)
	if len(empty.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(empty.Rows))
	}
}

func TestBuildCarriesValuation(t *testing.T) {
	investor, entries := sampleSnapshot(t)

	st := Build(investor, entries)

	if st.Valuation.CapitalNowCents != 880_000 {
		t.Fatalf("expected capital 880000, got %d", st.Valuation.CapitalNowCents)
	}
	if st.Valuation.WithdrawnTotalCents != 250_000 {
		t.Fatalf("expected withdrawn 250000, got %d", st.Valuation.WithdrawnTotalCents)
	}
	if st.Valuation.TotalProfitAllTimeCents != 105_000 {
		t.Fatalf("expected all-time profit 105000, got %d", st.Valuation.TotalProfitAllTimeCents)
	}
}

func TestRenderContainsSummaryAndRows(t *testing.T) {
	investor, entries := sampleSnapshot(t)

	out := Build(investor, entries).Render()

	for _, want := range []string{
		"Investor statement: A. Ivanov",
		"Invested:               10000.00",
		"Capital now:            8800.00",
		"profit withdrawal",
		"-2000.00",
		"+300.00",
		"operation",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered statement missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptyLedger(t *testing.T) {
	investor := models.Investor{ID: uuid.New(), InvestedAmountCents: 0}

	out := Build(investor, nil).Render()

	if !strings.Contains(out, "(unnamed)") {
		t.Fatalf("expected unnamed placeholder:\n%s", out)
	}
	if strings.Contains(out, "Operation") {
		t.Fatalf("no history table expected for an empty ledger:\n%s", out)
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{123456, "1234.56"},
		{-5000, "-50.00"},
	}
	for _, tc := range tests {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

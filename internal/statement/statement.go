// Package statement builds the investor-facing report: the four aggregates
// plus the ordered ledger history with human-readable operation labels.
package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mkravtsov/investra-backend/internal/ledger"
	"github.com/mkravtsov/investra-backend/pkg/db/models"
	"github.com/mkravtsov/investra-backend/pkg/enums"
)

// Row is one ledger entry prepared for display. AmountCents is signed for
// presentation only: withdrawals show negative, everything else positive. The
// stored magnitude convention is untouched.
type Row struct {
	Period      string          `json:"period"`
	EntryID     int64           `json:"entry_id"`
	Kind        enums.EntryKind `json:"kind"`
	Label       string          `json:"label"`
	AmountCents int64           `json:"amount_cents"`
}

// Statement is the full report for one investor.
type Statement struct {
	InvestorID          string           `json:"investor_id"`
	FullName            string           `json:"full_name"`
	InvestedAmountCents int64            `json:"invested_amount_cents"`
	Valuation           ledger.Valuation `json:"valuation"`
	Rows                []Row            `json:"rows"`
}

// Build folds the snapshot into a statement. Rows follow the chronological
// index: periods ascending, entries within a period in creation order.
func Build(investor models.Investor, entries []models.LedgerEntry) Statement {
	st := Statement{
		InvestorID:          investor.ID.String(),
		FullName:            investor.FullName,
		InvestedAmountCents: investor.InvestedAmountCents,
		Valuation:           ledger.Valuate(investor, entries),
	}

	for _, group := range ledger.Timeline(entries) {
		for _, entry := range group.Entries {
			kind := ledger.Classify(entry)
			amount := entry.AmountCents
			if kind.IsWithdrawal() {
				amount = -amount
			}
			st.Rows = append(st.Rows, Row{
				Period:      group.Period.String(),
				EntryID:     entry.ID,
				Kind:        kind,
				Label:       kind.Label(),
				AmountCents: amount,
			})
		}
	}
	return st
}

// FilterRows returns a copy of the statement with the history narrowed to one
// operation kind. The summary aggregates still cover the full ledger.
func (s Statement) FilterRows(kind enums.EntryKind) Statement {
	rows := make([]Row, 0, len(s.Rows))
	for _, row := range s.Rows {
		if row.Kind == kind {
			rows = append(rows, row)
		}
	}
	s.Rows = rows
	return s
}

// Render produces the plain-text report.
func (s Statement) Render() string {
	var b strings.Builder

	name := s.FullName
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&b, "Investor statement: %s\n", name)
	fmt.Fprintf(&b, "  Invested:               %s\n", FormatCents(s.InvestedAmountCents))
	fmt.Fprintf(&b, "  Capital now:            %s\n", FormatCents(s.Valuation.CapitalNowCents))
	fmt.Fprintf(&b, "  Net profit now:         %s\n", FormatCents(s.Valuation.NetProfitNowCents))
	fmt.Fprintf(&b, "  Profit all time:        %s\n", FormatCents(s.Valuation.TotalProfitAllTimeCents))
	fmt.Fprintf(&b, "  Withdrawn total:        %s\n", FormatCents(s.Valuation.WithdrawnTotalCents))

	if len(s.Rows) > 0 {
		b.WriteString("\n  Period   Operation            Amount\n")
		for _, row := range s.Rows {
			fmt.Fprintf(&b, "  %-8s %-20s %s\n", row.Period, row.Label, formatSigned(row.AmountCents))
		}
	}
	return b.String()
}

// FormatCents renders integer cents as a decimal money string.
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func formatSigned(cents int64) string {
	if cents > 0 {
		return "+" + FormatCents(cents)
	}
	return FormatCents(cents)
}

package ledger

import (
	"sort"

	"github.com/mkravtsov/investra-backend/pkg/db/models"
	dbtypes "github.com/mkravtsov/investra-backend/pkg/db/types"
)

// PeriodGroup is one calendar month of an investor's history, entries in
// creation order.
type PeriodGroup struct {
	Period  dbtypes.Period       `json:"period"`
	Entries []models.LedgerEntry `json:"entries"`
}

// Timeline orders entries for display: periods ascending, and inside a period
// by id ascending. The id is the tie-break rather than the creation timestamp
// so ordering stays stable when timestamps collide. The input is not mutated
// and the result depends only on the entry set, so re-running it over the same
// snapshot always yields the same sequence.
func Timeline(entries []models.LedgerEntry) []PeriodGroup {
	sorted := make([]models.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].PeriodMonth != sorted[j].PeriodMonth {
			return sorted[i].PeriodMonth.Before(sorted[j].PeriodMonth)
		}
		return sorted[i].ID < sorted[j].ID
	})

	var groups []PeriodGroup
	for _, entry := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Period == entry.PeriodMonth {
			groups[n-1].Entries = append(groups[n-1].Entries, entry)
			continue
		}
		groups = append(groups, PeriodGroup{
			Period:  entry.PeriodMonth,
			Entries: []models.LedgerEntry{entry},
		})
	}
	return groups
}

package ledger

import (
	"github.com/mkravtsov/investra-backend/pkg/db/models"
	"github.com/mkravtsov/investra-backend/pkg/enums"
)

// Classify maps an entry's flags to its kind. The amount's sign never takes
// part: amounts are stored as magnitudes and direction comes from the flags
// alone. An entry with no flags set is a plain profit operation.
func Classify(entry models.LedgerEntry) enums.EntryKind {
	switch {
	case entry.IsTopup:
		return enums.EntryKindTopup
	case entry.Reinvest:
		return enums.EntryKindReinvest
	case entry.IsWithdrawalCapital:
		return enums.EntryKindWithdrawCapital
	case entry.IsWithdrawalProfit:
		return enums.EntryKindWithdrawProfit
	default:
		return enums.EntryKindOperation
	}
}

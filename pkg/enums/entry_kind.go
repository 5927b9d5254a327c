package enums

import "fmt"

// EntryKind maps to the entry_kind_enum enum in Postgres. It is the closed set of
// ledger entry classifications; every business rule about an entry's effect on
// capital or profit hangs off this type and nowhere else.
type EntryKind string

const (
	EntryKindTopup           EntryKind = "topup"
	EntryKindReinvest        EntryKind = "reinvest"
	EntryKindWithdrawCapital EntryKind = "withdraw_capital"
	EntryKindWithdrawProfit  EntryKind = "withdraw_profit"
	EntryKindOperation       EntryKind = "operation"
)

var validEntryKinds = []EntryKind{
	EntryKindTopup,
	EntryKindReinvest,
	EntryKindWithdrawCapital,
	EntryKindWithdrawProfit,
	EntryKindOperation,
}

// IsValid reports whether the value matches the canonical entry kind enum.
func (k EntryKind) IsValid() bool {
	for _, candidate := range validEntryKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseEntryKind converts raw input into EntryKind.
func ParseEntryKind(value string) (EntryKind, error) {
	for _, candidate := range validEntryKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid entry kind %q", value)
}

// CapitalSign returns the signed multiplier the kind applies to an entry's stored
// magnitude when folding capital: +1 for topups and reinvests, -1 for withdrawals,
// 0 for plain operations.
func (k EntryKind) CapitalSign() int64 {
	switch k {
	case EntryKindTopup, EntryKindReinvest:
		return 1
	case EntryKindWithdrawCapital, EntryKindWithdrawProfit:
		return -1
	default:
		return 0
	}
}

// IsWithdrawal reports whether the kind removes money from the investor's capital.
func (k EntryKind) IsWithdrawal() bool {
	return k == EntryKindWithdrawCapital || k == EntryKindWithdrawProfit
}

// CountsAsProfit reports whether the entry's magnitude accrues to the investor's
// all-time profit. Reinvested profit and plain operations count; topups are fresh
// capital and withdrawals only move money that was already counted when credited.
func (k EntryKind) CountsAsProfit() bool {
	return k == EntryKindReinvest || k == EntryKindOperation
}

// Label returns the human-readable operation name used on investor statements.
func (k EntryKind) Label() string {
	switch k {
	case EntryKindTopup:
		return "capital top-up"
	case EntryKindReinvest:
		return "reinvestment"
	case EntryKindWithdrawCapital:
		return "capital withdrawal"
	case EntryKindWithdrawProfit:
		return "profit withdrawal"
	default:
		return "operation"
	}
}

package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/mkravtsov/investra-backend/pkg/db/types"
)

// LedgerEntry records one immutable financial event against an investor.
//
// AmountCents is always the unsigned magnitude; the direction of the movement
// is derived from the flags, never from the sign of the amount. The integer ID
// is monotone in creation order and serves as the tie-break inside a period.
type LedgerEntry struct {
	ID                  int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InvestorID          uuid.UUID      `gorm:"column:investor_id;type:uuid;not null;index" json:"investor_id"`
	PeriodMonth         dbtypes.Period `gorm:"column:period_month;type:text;not null" json:"period_month"`
	AmountCents         int64          `gorm:"column:amount_cents;not null" json:"amount_cents"`
	Reinvest            bool           `gorm:"column:reinvest;not null;default:false" json:"reinvest"`
	IsWithdrawalCapital bool           `gorm:"column:is_withdrawal_capital;not null;default:false" json:"is_withdrawal_capital"`
	IsWithdrawalProfit  bool           `gorm:"column:is_withdrawal_profit;not null;default:false" json:"is_withdrawal_profit"`
	IsTopup             bool           `gorm:"column:is_topup;not null;default:false" json:"is_topup"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LedgerEntry) TableName() string { return "ledger_entries" }

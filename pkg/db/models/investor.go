package models

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderFullName is assigned at creation; the investor is renamed by an
// explicit edit afterwards.
const PlaceholderFullName = "New investor"

// Investor owns a base contribution and a stream of ledger entries. The base
// contribution only changes through an explicit edit, never through the ledger.
type Investor struct {
	ID                   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName             string    `gorm:"column:full_name;not null" json:"full_name"`
	InvestedAmountCents  int64     `gorm:"column:invested_amount_cents;not null;default:0" json:"invested_amount_cents"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Investor) TableName() string { return "investors" }

package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountRule maps a vendor-name substring to a ledger account for one
// tenant. Rules are evaluated in creation order, first match wins.
type AccountRule struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"index"`
	Keyword      string    // stored lowercase
	AccountCode  string
	AccountLabel string
	CreatedAt    time.Time
}

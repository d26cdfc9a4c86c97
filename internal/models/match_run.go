package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MatchRun is the audit record of one reconciliation invocation.
type MatchRun struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID `gorm:"index"`
	DocumentCount    int
	TransactionCount int
	MatchedCount     int
	Details          datatypes.JSON
	StartedAt        time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
}
